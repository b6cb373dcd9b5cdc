package tweak

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is a named bundle of colors, sizing and glyphs used to render the
// panel. Themes are passed explicitly into every render call rather than
// held in package state, so two panels in one program can look different.
type Theme struct {
	Name string

	// Colors
	Background lipgloss.Color // panel background
	Surface    lipgloss.Color // bar and folder header background
	Text       lipgloss.Color // value text
	Muted      lipgloss.Color // labels, inactive chrome
	Accent     lipgloss.Color // focused rows, slider fill, bar title
	Danger     lipgloss.Color // error text

	// Sizing
	LabelWidth int // columns reserved for the label gutter
	Padding    int // horizontal padding inside the panel

	// Glyphs
	Border      lipgloss.Border
	SliderFill  rune
	SliderEmpty rune
	ToggleOn    string
	ToggleOff   string
	FolderOpen  string
	FolderShut  string
}

// DefaultTheme is the name resolved when no theme is requested.
const DefaultTheme = "dark"

var themes = map[string]Theme{
	"dark": {
		Name:       "dark",
		Background: lipgloss.Color("#1d2021"),
		Surface:    lipgloss.Color("#32302f"),
		Text:       lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#928374"),
		Accent:     lipgloss.Color("#83a598"),
		Danger:     lipgloss.Color("#fb4934"),

		LabelWidth:  12,
		Padding:     1,
		Border:      lipgloss.RoundedBorder(),
		SliderFill:  '█',
		SliderEmpty: '░',
		ToggleOn:    "[x]",
		ToggleOff:   "[ ]",
		FolderOpen:  "▾",
		FolderShut:  "▸",
	},
	"light": {
		Name:       "light",
		Background: lipgloss.Color("#fbf1c7"),
		Surface:    lipgloss.Color("#ebdbb2"),
		Text:       lipgloss.Color("#3c3836"),
		Muted:      lipgloss.Color("#7c6f64"),
		Accent:     lipgloss.Color("#076678"),
		Danger:     lipgloss.Color("#9d0006"),

		LabelWidth:  12,
		Padding:     1,
		Border:      lipgloss.RoundedBorder(),
		SliderFill:  '█',
		SliderEmpty: '░',
		ToggleOn:    "[x]",
		ToggleOff:   "[ ]",
		FolderOpen:  "▾",
		FolderShut:  "▸",
	},
	"midnight": {
		Name:       "midnight",
		Background: lipgloss.Color("#0f111a"),
		Surface:    lipgloss.Color("#1f2233"),
		Text:       lipgloss.Color("#c8ccd4"),
		Muted:      lipgloss.Color("#565f89"),
		Accent:     lipgloss.Color("#7aa2f7"),
		Danger:     lipgloss.Color("#f7768e"),

		LabelWidth:  12,
		Padding:     1,
		Border:      lipgloss.RoundedBorder(),
		SliderFill:  '━',
		SliderEmpty: '─',
		ToggleOn:    "●",
		ToggleOff:   "○",
		FolderOpen:  "▾",
		FolderShut:  "▸",
	},
	"contrast": {
		Name:       "contrast",
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#1a1a1a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#bbbbbb"),
		Accent:     lipgloss.Color("#ffff00"),
		Danger:     lipgloss.Color("#ff0000"),

		LabelWidth:  12,
		Padding:     1,
		Border:      lipgloss.NormalBorder(),
		SliderFill:  '#',
		SliderEmpty: '-',
		ToggleOn:    "[x]",
		ToggleOff:   "[ ]",
		FolderOpen:  "v",
		FolderShut:  ">",
	},
}

// ResolveTheme returns the built-in theme with the given name.
// Unknown or empty names resolve to the dark theme.
func ResolveTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames returns the names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// Faded returns a copy of the theme with every foreground color blended
// toward the panel background. opacity 1 is the theme unchanged, 0 is fully
// background colored. Values outside [0,1) return the theme unchanged.
func (t Theme) Faded(opacity float64) Theme {
	if opacity < 0 || opacity >= 1 {
		return t
	}
	t.Text = blend(t.Background, t.Text, opacity)
	t.Muted = blend(t.Background, t.Muted, opacity)
	t.Accent = blend(t.Background, t.Accent, opacity)
	t.Danger = blend(t.Background, t.Danger, opacity)
	t.Surface = blend(t.Background, t.Surface, opacity)
	return t
}

// blend mixes two hex colors in RGB space. t=0 yields a, t=1 yields b.
// Colors that fail to parse pass through unchanged.
func blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return b
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return b
	}
	return lipgloss.Color(ca.BlendRgb(cb, t).Hex())
}

// Style helpers used by the widget variants. Each returns a fresh style so
// callers can chain further adjustments without aliasing.

func (t Theme) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Width(t.LabelWidth)
}

func (t Theme) valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}
