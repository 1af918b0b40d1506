// Package layout draws the fixed-width report table: a label column and a
// value column framed with box-drawing borders. All sizing goes through a
// Measure so ANSI-decorated and multi-byte text stays aligned.
package layout

import (
	"math"
	"strings"

	"machinereport/ascii"
)

// Column sizing.
const (
	MaxNameLen        = 13
	MinDataLen        = 20
	MaxDataLen        = 32
	BordersAndPadding = 7

	// dividerJunction is the column of the junction glyph in dividers; it
	// lines up with the separator between the label and value columns.
	dividerJunction = 16
)

// Mode says how a row's value is drawn.
type Mode int

const (
	// Text rows print Value, truncated and padded to the working width.
	Text Mode = iota
	// Bar rows draw a graph of Percent.
	Bar
)

// Row is one labeled line of the table.
type Row struct {
	Label   string
	Value   string
	Mode    Mode
	Percent float64
}

// DividerKind selects the corner and junction glyphs of a divider.
type DividerKind int

const (
	// DividerTop opens the two columns below the banner: ├──┬──┤
	DividerTop DividerKind = iota
	// DividerMid separates sections: ├──┼──┤
	DividerMid
	// DividerBottom closes the table: └──┴──┘
	DividerBottom
)

// WorkingWidth picks the single value-column width for a table.
//
// Parameters:
//   - values: Every text value the table will show
//   - measure: How columns are counted
//
// Returns:
//   - The widest value's width, clamped to [MinDataLen, MaxDataLen]
func WorkingWidth(values []string, measure Measure) int {
	w := 0
	for _, v := range values {
		if n := measure(v); n > w {
			w = n
		}
	}
	return clamp(w, MinDataLen, MaxDataLen)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BarCells returns how many of width cells are filled for percent:
// floor(percent/100*width), clamped to [0, width].
func BarCells(percent float64, width int) int {
	if width <= 0 || math.IsNaN(percent) {
		return 0
	}
	return clamp(int(math.Floor(percent/100*float64(width))), 0, width)
}

// BarGraph renders percent as width cells of filled then empty glyphs.
func BarGraph(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := BarCells(percent, width)
	return strings.Repeat(ascii.BarFilled, filled) + strings.Repeat(ascii.BarEmpty, width-filled)
}

// Truncate shortens s to fit a column, ending in an ellipsis when anything
// was cut. s is expected to be undecorated.
//
// Parameters:
//   - s: The text to shorten
//   - width: Maximum number of columns of the result
//   - measure: How columns are counted
//
// Returns:
//   - s unchanged if it already fits
//   - A prefix of s followed by "..." otherwise, or a bare prefix when width
//     is too small to hold the ellipsis
//
// Example: Truncate("VERY LONG LABEL NAME", 13, DisplayWidth) returns "VERY LONG ..."
func Truncate(s string, width int, measure Measure) string {
	if measure(s) <= width {
		return s
	}
	ell := measure(ascii.Ellipsis)
	if width <= ell {
		return cut(s, width, measure)
	}
	return cut(s, width-ell, measure) + ascii.Ellipsis
}

// cut keeps the longest prefix of s whose width does not exceed width.
func cut(s string, width int, measure Measure) string {
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := measure(string(r))
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

// PadRight appends spaces until s is width columns wide.
func PadRight(s string, width int, measure Measure) string {
	if n := measure(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Table renders rows at a fixed working width.
type Table struct {
	Width   int
	Measure Measure
	Theme   ascii.Theme
}

// NewTable sizes a table for values. A nil measure defaults to DisplayWidth.
func NewTable(values []string, measure Measure, theme ascii.Theme) *Table {
	if measure == nil {
		measure = DisplayWidth
	}
	return &Table{Width: WorkingWidth(values, measure), Measure: measure, Theme: theme}
}

// LineWidth is the total width of every line the table draws.
func (t *Table) LineWidth() int {
	return t.Width + MaxNameLen + BordersAndPadding
}

// GraphWidth is the number of cells in a bar graph.
func (t *Table) GraphWidth() int {
	if g := MaxDataLen - 3; t.Width > g {
		return g
	}
	return t.Width
}

// Header returns the two decorative lines above the banner: ┌┬┬┐ and ├┴┴┤.
func (t *Table) Header() []string {
	inner := t.LineWidth() - 2
	g := ascii.Box
	return []string{
		t.Theme.Border(g.TopLeft + strings.Repeat(g.TeeDown, inner) + g.TopRight),
		t.Theme.Border(g.TeeRight + strings.Repeat(g.TeeUp, inner) + g.TeeLeft),
	}
}

// Divider returns a horizontal rule of the given kind.
func (t *Table) Divider(kind DividerKind) string {
	g := ascii.Box
	left, mid, right := g.TeeRight, g.Cross, g.TeeLeft
	switch kind {
	case DividerTop:
		mid = g.TeeDown
	case DividerBottom:
		left, mid, right = g.BottomLeft, g.TeeUp, g.BottomRight
	}

	rest := t.LineWidth() - dividerJunction - 2
	line := left + strings.Repeat(g.Horizontal, dividerJunction-1) + mid + strings.Repeat(g.Horizontal, rest) + right
	return t.Theme.Border(line)
}

// Centered returns text centered between vertical borders.
func (t *Table) Centered(text string) string {
	inner := t.LineWidth() - 2
	text = Truncate(text, inner, t.Measure)
	n := t.Measure(text)
	left := (inner - n) / 2
	right := inner - n - left

	bar := t.Theme.Border(ascii.Box.Vertical)
	return bar + strings.Repeat(" ", left) + t.Theme.Title(text) + strings.Repeat(" ", right) + bar
}

// Line renders a single row: │ label │ value │
func (t *Table) Line(row Row) string {
	label := t.Theme.Label(Truncate(row.Label, MaxNameLen, t.Measure))
	label = PadRight(label, MaxNameLen, t.Measure)

	var value string
	switch row.Mode {
	case Bar:
		value = t.bar(row.Percent)
	default:
		value = t.Theme.Value(Truncate(row.Value, t.Width, t.Measure))
	}
	value = PadRight(value, t.Width, t.Measure)

	bar := t.Theme.Border(ascii.Box.Vertical)
	return bar + " " + label + " " + bar + " " + value + " " + bar
}

func (t *Table) bar(percent float64) string {
	width := t.GraphWidth()
	filled := BarCells(percent, width)
	return t.Theme.Fill(percent, strings.Repeat(ascii.BarFilled, filled)) +
		t.Theme.Empty(strings.Repeat(ascii.BarEmpty, width-filled))
}
