package layout

import (
	"io"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinereport/ascii"
)

func TestWorkingWidth(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   int
	}{
		{name: "empty clamps to min", values: nil, want: MinDataLen},
		{name: "short values clamp to min", values: []string{"OS", "alice"}, want: MinDataLen},
		{name: "in range", values: []string{"Apple M2 Pro (12 cores)"}, want: 23},
		{name: "long clamps to max", values: []string{strings.Repeat("x", 50)}, want: MaxDataLen},
		{name: "ansi ignored", values: []string{"\x1b[31m" + strings.Repeat("y", 25) + "\x1b[0m"}, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingWidth(tt.values, DisplayWidth))
		})
	}
}

func TestBarGraphProportions(t *testing.T) {
	for width := 1; width <= MaxDataLen; width++ {
		for p := 0.0; p <= 100; p += 2.5 {
			graph := BarGraph(p, width)
			filled := strings.Count(graph, ascii.BarFilled)
			empty := strings.Count(graph, ascii.BarEmpty)

			want := int(math.Floor(p / 100 * float64(width)))
			require.Equal(t, want, filled, "percent=%v width=%d", p, width)
			require.Equal(t, width-want, empty, "percent=%v width=%d", p, width)
			require.Equal(t, width, utf8.RuneCountInString(graph))
		}
	}
}

func TestBarGraphClamps(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		filled  int
	}{
		{name: "overcommitted load", percent: 150, width: 29, filled: 29},
		{name: "far over", percent: 1e6, width: 10, filled: 10},
		{name: "negative", percent: -20, width: 10, filled: 0},
		{name: "nan", percent: math.NaN(), width: 10, filled: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := BarGraph(tt.percent, tt.width)
			assert.Equal(t, tt.filled, strings.Count(graph, ascii.BarFilled))
			assert.Equal(t, tt.width-tt.filled, strings.Count(graph, ascii.BarEmpty))
		})
	}

	assert.Equal(t, "", BarGraph(50, 0))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "HOSTNAME", width: 13, want: "HOSTNAME"},
		{name: "exact", in: "ABCDEFGHIJKLM", width: 13, want: "ABCDEFGHIJKLM"},
		{name: "long label", in: "VERY LONG LABEL NAME", width: 13, want: "VERY LONG ..."},
		{name: "wide runes", in: "🚀🚀🚀🚀", width: 6, want: "🚀..."},
		{name: "tiny width", in: "abcdef", width: 2, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width, DisplayWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, DisplayWidth(got), tt.width)
		})
	}
}

func TestTableBorders(t *testing.T) {
	tbl := NewTable([]string{"SYSTEM STATUS REPORT"}, nil, ascii.Plain())
	require.Equal(t, MinDataLen, tbl.Width)
	width := tbl.LineWidth()
	assert.Equal(t, 40, width)

	header := tbl.Header()
	require.Len(t, header, 2)
	assert.Equal(t, "┌"+strings.Repeat("┬", width-2)+"┐", header[0])
	assert.Equal(t, "├"+strings.Repeat("┴", width-2)+"┤", header[1])

	top := tbl.Divider(DividerTop)
	mid := tbl.Divider(DividerMid)
	bottom := tbl.Divider(DividerBottom)

	assert.True(t, strings.HasPrefix(top, "├"+strings.Repeat("─", 15)+"┬"))
	assert.True(t, strings.HasPrefix(mid, "├"+strings.Repeat("─", 15)+"┼"))
	assert.True(t, strings.HasPrefix(bottom, "└"+strings.Repeat("─", 15)+"┴"))
	assert.True(t, strings.HasSuffix(bottom, "─┘"))

	for _, line := range append(header, top, mid, bottom) {
		assert.Equal(t, width, DisplayWidth(line), "%q", line)
	}

	// only the corner and junction glyphs differ between variants
	strip := func(s string) string {
		r := []rune(s)
		return string(r[1:16]) + string(r[17:len(r)-1])
	}
	assert.Equal(t, strip(mid), strip(top))
	assert.Equal(t, strip(mid), strip(bottom))
}

func TestTableLineAlignment(t *testing.T) {
	values := []string{"Apple M2 Pro", "Darwin 23.1.0", "Mon Jan 1 10:00"}
	tbl := NewTable(values, DisplayWidth, ascii.Plain())

	rows := []Row{
		{Label: "OS", Value: "macOS 14.1"},
		{Label: "A LABEL THAT IS TOO LONG", Value: "x"},
		{Label: "LOAD  1m", Mode: Bar, Percent: 50},
		{Label: "LOAD 15m", Mode: Bar, Percent: 250},
		{Label: "PROCESSOR", Value: strings.Repeat("z", 60)},
		{Label: "", Value: "192.168.1.20"},
	}

	for _, row := range rows {
		line := tbl.Line(row)
		assert.Equal(t, tbl.LineWidth(), DisplayWidth(line), "%q", line)
		assert.Equal(t, "│", string([]rune(line)[16]), "%q", line)
	}

	assert.Contains(t, tbl.Line(rows[1]), "A LABEL TH...")
	assert.Contains(t, tbl.Line(rows[4]), strings.Repeat("z", tbl.Width-3)+"...")
	assert.Equal(t, tbl.GraphWidth(), strings.Count(tbl.Line(rows[3]), ascii.BarFilled))
}

func TestTableColoredAlignment(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	theme := ascii.Color(r)

	values := []string{"Darwin 23.1.0", "8.00/16.00 GiB [50.00%]"}
	plain := NewTable(values, DisplayWidth, ascii.Plain())
	colored := NewTable(values, DisplayWidth, theme)
	require.Equal(t, plain.Width, colored.Width)

	for _, row := range []Row{
		{Label: "KERNEL", Value: "Darwin 23.1.0"},
		{Label: "USAGE", Mode: Bar, Percent: 75},
	} {
		line := colored.Line(row)
		assert.Contains(t, line, "\x1b[")
		assert.Equal(t, plain.LineWidth(), DisplayWidth(line))
		assert.Equal(t, plain.Line(row), ansiRegex.ReplaceAllString(line, ""))
	}

	assert.Equal(t, plain.LineWidth(), DisplayWidth(colored.Centered(ascii.ReportTitle)))
	assert.Equal(t, plain.LineWidth(), DisplayWidth(colored.Divider(DividerMid)))
}

func TestTableGraphWidth(t *testing.T) {
	tbl := &Table{Width: MaxDataLen, Measure: DisplayWidth, Theme: ascii.Plain()}
	assert.Equal(t, MaxDataLen-3, tbl.GraphWidth())

	tbl.Width = 24
	assert.Equal(t, 24, tbl.GraphWidth())
}

func TestCentered(t *testing.T) {
	tbl := NewTable(nil, DisplayWidth, ascii.Plain())
	line := tbl.Centered(ascii.ReportTitle)

	assert.Equal(t, tbl.LineWidth(), DisplayWidth(line))
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "│"), "│")
	left := len(inner) - len(strings.TrimLeft(inner, " "))
	right := len(inner) - len(strings.TrimRight(inner, " "))
	assert.LessOrEqual(t, right-left, 1)
	assert.GreaterOrEqual(t, right-left, 0)
}

func TestExactMeasureTable(t *testing.T) {
	tbl := NewTable([]string{"日本語のホスト名"}, ExactWidth, ascii.Plain())
	line := tbl.Line(Row{Label: "HOSTNAME", Value: "日本語のホスト名"})
	assert.Equal(t, tbl.LineWidth(), ExactWidth(line))
}
