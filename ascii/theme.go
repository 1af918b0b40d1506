package ascii

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette for the colored edition.
const (
	ColorBorder  = lipgloss.Color("#6B6B8D")
	ColorTitle   = lipgloss.Color("#FF2E97")
	ColorLabel   = lipgloss.Color("#00FFFF")
	ColorValue   = lipgloss.Color("#FFFFFF")
	ColorEmpty   = lipgloss.Color("#2A2A4A")
	ColorHealthy = lipgloss.Color("#39FF14")
	ColorWarning = lipgloss.Color("#FFAA00")
	ColorDanger  = lipgloss.Color("#FF0055")
)

// Bar fill severity thresholds, in percent.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Theme decorates already-sized text. Every function must leave the visible
// width unchanged: decorations are limited to ANSI SGR sequences.
type Theme struct {
	Name string

	Border func(s string) string
	Title  func(s string) string
	Label  func(s string) string
	Value  func(s string) string

	// Fill colors the filled part of a bar for the given percentage.
	Fill  func(percent float64, s string) string
	Empty func(s string) string
}

func identity(s string) string { return s }

// Plain returns the undecorated theme.
func Plain() Theme {
	return Theme{
		Name:   "plain",
		Border: identity,
		Title:  identity,
		Label:  identity,
		Value:  identity,
		Fill:   func(_ float64, s string) string { return s },
		Empty:  identity,
	}
}

// Color returns the decorated theme rendered through r. The renderer's color
// profile decides which escape sequences are emitted; an Ascii profile
// produces plain text.
func Color(r *lipgloss.Renderer) Theme {
	border := r.NewStyle().Foreground(ColorBorder)
	title := r.NewStyle().Foreground(ColorTitle).Bold(true)
	label := r.NewStyle().Foreground(ColorLabel).Bold(true)
	value := r.NewStyle().Foreground(ColorValue)
	empty := r.NewStyle().Foreground(ColorEmpty)

	return Theme{
		Name:   "color",
		Border: func(s string) string { return renderNonEmpty(border, s) },
		Title:  func(s string) string { return renderNonEmpty(title, s) },
		Label:  func(s string) string { return renderNonEmpty(label, s) },
		Value:  func(s string) string { return renderNonEmpty(value, s) },
		Fill: func(percent float64, s string) string {
			return renderNonEmpty(r.NewStyle().Foreground(MetricColor(percent)), s)
		},
		Empty: func(s string) string { return renderNonEmpty(empty, s) },
	}
}

func renderNonEmpty(style lipgloss.Style, s string) string {
	if s == "" {
		return s
	}
	return style.Render(s)
}

// MetricColor maps a usage percentage to healthy, warning or danger.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorDanger
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}
