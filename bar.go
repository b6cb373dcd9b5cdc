package tweak

import "github.com/charmbracelet/lipgloss"

// BarMode controls how the menu bar sits relative to the panel. The zero
// value is BarOffset, the default.
type BarMode int

const (
	// BarOffset renders the bar with a one-row gap above the panel.
	BarOffset BarMode = iota
	// BarNone omits the bar entirely; the panel is always visible.
	BarNone
	// BarAbove renders the bar flush against the top of the panel.
	BarAbove
	// BarOverlay draws the bar over the panel's top row when open.
	BarOverlay
)

// String implements fmt.Stringer.
func (m BarMode) String() string {
	switch m {
	case BarNone:
		return "none"
	case BarAbove:
		return "above"
	case BarOverlay:
		return "overlay"
	default:
		return "offset"
	}
}

// parseBarMode maps a config string to a BarMode, falling back to the
// default on anything unrecognized.
func parseBarMode(s string) BarMode {
	switch s {
	case "none":
		return BarNone
	case "above":
		return BarAbove
	case "overlay":
		return BarOverlay
	}
	return BarOffset
}

// menuBar is the optional top bar toggling panel visibility.
type menuBar struct {
	title string
	mode  BarMode
}

// view renders the bar. The chevron reflects whether the panel is open.
func (b *menuBar) view(th Theme, width int, open bool) string {
	glyph := th.FolderShut
	if open {
		glyph = th.FolderOpen
	}
	return lipgloss.NewStyle().
		Foreground(th.Accent).
		Background(th.Surface).
		Bold(true).
		Width(width).
		Render(" " + glyph + " " + b.title)
}
