package tweak

import tea "github.com/charmbracelet/bubbletea"

// ToggleComponent is a boolean on/off switch.
type ToggleComponent struct {
	base
	emitter
	value bool
}

// Toggle creates a toggle widget, initially off.
func Toggle(label string) *ToggleComponent {
	return &ToggleComponent{base: base{label: label}}
}

// On presets the toggle's state.
func (t *ToggleComponent) On(v bool) *ToggleComponent {
	t.value = v
	return t
}

// Value implements Valuer.
func (t *ToggleComponent) Value() any { return t.value }

// SetValue implements Valuer. Non-boolean values are ignored.
func (t *ToggleComponent) SetValue(v any) {
	if b, ok := toBool(v); ok {
		t.value = b
	}
}

// Update implements Component. Enter or space flips the switch.
func (t *ToggleComponent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter", " ":
		t.value = !t.value
		t.emitInput(t.value)
	}
	return nil
}

// View implements Component.
func (t *ToggleComponent) View(th Theme, width int) string {
	glyph := th.ToggleOff
	if t.value {
		glyph = th.ToggleOn
	}
	style := th.valueStyle()
	if t.focused {
		style = th.accentStyle()
	}
	return th.labelStyle().Render(t.label) + style.MaxWidth(width-th.LabelWidth).Render(glyph)
}

var (
	_ Component = (*ToggleComponent)(nil)
	_ Valuer    = (*ToggleComponent)(nil)
	_ Emitter   = (*ToggleComponent)(nil)
	_ Focusable = (*ToggleComponent)(nil)
)
