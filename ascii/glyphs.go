// Package ascii provides the glyphs and themes used to draw the report:
// the banner text, the box-drawing set for borders and dividers, the bar
// graph blocks, and the plain and colored themes that decorate them.
package ascii

// Banner lines shown centered under the report header.
const (
	ReportTitle    = "SYSTEM STATUS REPORT"
	ReportSubtitle = "TR-1000 MACHINE REPORT"
)

// Banner returns the centered title lines, top to bottom.
func Banner() []string {
	return []string{ReportTitle, ReportSubtitle}
}

// BoxGlyphs is a set of box-drawing characters.
type BoxGlyphs struct {
	Horizontal string
	Vertical   string

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	TeeRight string // ├
	TeeLeft  string // ┤
	TeeDown  string // ┬
	TeeUp    string // ┴
	Cross    string // ┼
}

// Box is the light single-line set every table border is drawn with.
var Box = BoxGlyphs{
	Horizontal:  "─",
	Vertical:    "│",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
	TeeRight:    "├",
	TeeLeft:     "┤",
	TeeDown:     "┬",
	TeeUp:       "┴",
	Cross:       "┼",
}

// Bar graph glyphs.
const (
	BarFilled = "█"
	BarEmpty  = "░"
)

// Ellipsis marks truncated labels and values.
const Ellipsis = "..."
