package tweak

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorComponent holds a hex color string. Left/right rotate the hue,
// k/j adjust brightness. The swatch previews the current color.
type ColorComponent struct {
	base
	emitter
	value string
}

// ColorPicker creates a color widget starting at white.
func ColorPicker(label string) *ColorComponent {
	return &ColorComponent{
		base:  base{label: label},
		value: "#ffffff",
	}
}

// Value implements Valuer.
func (c *ColorComponent) Value() any { return c.value }

// SetValue implements Valuer. Values that don't parse as hex colors are
// ignored.
func (c *ColorComponent) SetValue(v any) {
	s, ok := toString(v)
	if !ok {
		return
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if _, err := colorful.Hex(s); err != nil {
		return
	}
	c.value = strings.ToLower(s)
}

// Update implements Component.
func (c *ColorComponent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	cur, err := colorful.Hex(c.value)
	if err != nil {
		cur = colorful.Color{R: 1, G: 1, B: 1}
	}
	h, s, v := cur.Hsv()
	switch key.String() {
	case "left", "h":
		h -= 15
	case "right", "l":
		h += 15
	case "k":
		v += 0.05
	case "j":
		v -= 0.05
	default:
		return nil
	}
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	if v < 0.05 {
		v = 0.05
	}
	if v > 1 {
		v = 1
	}
	if s == 0 {
		s = 1 // grays have no hue to rotate; kick into color
	}
	c.value = colorful.Hsv(h, s, v).Clamped().Hex()
	c.emitInput(c.value)
	return nil
}

// View implements Component.
func (c *ColorComponent) View(th Theme, width int) string {
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.value)).Render("  ")
	style := th.valueStyle()
	if c.focused {
		style = th.accentStyle()
	}
	return th.labelStyle().Render(c.label) + swatch + " " + style.MaxWidth(width-th.LabelWidth-3).Render(c.value)
}

var (
	_ Component = (*ColorComponent)(nil)
	_ Valuer    = (*ColorComponent)(nil)
	_ Emitter   = (*ColorComponent)(nil)
	_ Focusable = (*ColorComponent)(nil)
)
