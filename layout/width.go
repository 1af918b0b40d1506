package layout

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// Measure returns the number of terminal columns a string occupies.
type Measure func(s string) int

// exactCondition measures ambiguous-width characters (box drawing, blocks)
// as narrow regardless of the locale.
var exactCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// ansiRegex matches CSI escape sequences for removal before measuring.
var ansiRegex = regexp.MustCompile(`\x1b\[[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]`)

// DisplayWidth estimates the visible width of s from UTF-8 byte classes.
//
// CSI sequences (ESC '[' ... final byte 0x40-0x7E) count zero. ASCII counts
// one. Two-byte sequences count one for U+0080-U+017F (Latin-1 Supplement and
// Latin Extended-A) and two otherwise. Three-byte sequences, which include
// the box-drawing and block glyphs, count one. Four-byte sequences (emoji and
// other astral characters) count two.
//
// This is an approximation, not an East Asian Width table: CJK ideographs are
// three bytes and count one, and narrow Greek or Cyrillic letters count two.
// ExactWidth uses a full table.
func DisplayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case b == 0x1b && i+1 < len(s) && s[i+1] == '[':
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			i++
		case b < 0x80:
			w++
			i++
		case b&0xe0 == 0xc0:
			if b >= 0xc2 && b <= 0xc5 {
				w++
			} else {
				w += 2
			}
			i += 2
		case b&0xf0 == 0xe0:
			w++
			i += 3
		case b&0xf8 == 0xf0:
			w += 2
			i += 4
		default:
			// stray continuation or invalid lead byte
			i++
		}
	}
	return w
}

// ExactWidth strips ANSI escape codes and measures the rest with
// go-runewidth's East Asian Width tables.
func ExactWidth(s string) int {
	return exactCondition.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}
