package tweak

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextFieldComponent is a single-line text entry backed by a bubbles
// textinput. An input event fires on every edit that changes the value.
type TextFieldComponent struct {
	base
	emitter
	input textinput.Model
	last  string
}

// TextField creates a text entry widget.
func TextField(label string) *TextFieldComponent {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	return &TextFieldComponent{
		base:  base{label: label},
		input: ti,
	}
}

// Placeholder sets the text shown while the field is empty.
func (t *TextFieldComponent) Placeholder(s string) *TextFieldComponent {
	t.input.Placeholder = s
	return t
}

// Value implements Valuer.
func (t *TextFieldComponent) Value() any { return t.input.Value() }

// SetValue implements Valuer. Non-string values are ignored.
func (t *TextFieldComponent) SetValue(v any) {
	if s, ok := toString(v); ok {
		t.input.SetValue(s)
		t.input.CursorEnd()
		t.last = s
	}
}

// Focus implements Focusable, forwarding to the inner textinput so the
// cursor shows.
func (t *TextFieldComponent) Focus() {
	t.base.Focus()
	t.input.Focus()
}

// Blur implements Focusable.
func (t *TextFieldComponent) Blur() {
	t.base.Blur()
	t.input.Blur()
}

// Update implements Component. Keystrokes edit the field; any edit that
// changes the value emits an input event.
func (t *TextFieldComponent) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if v := t.input.Value(); v != t.last {
		t.last = v
		t.emitInput(v)
	}
	return cmd
}

// View implements Component.
func (t *TextFieldComponent) View(th Theme, width int) string {
	t.input.TextStyle = th.valueStyle()
	t.input.PlaceholderStyle = th.mutedStyle()
	t.input.Width = width - th.LabelWidth - 1
	return th.labelStyle().Render(t.label) + t.input.View()
}

var (
	_ Component = (*TextFieldComponent)(nil)
	_ Valuer    = (*TextFieldComponent)(nil)
	_ Emitter   = (*TextFieldComponent)(nil)
	_ Focusable = (*TextFieldComponent)(nil)
)
