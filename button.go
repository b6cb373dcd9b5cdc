package tweak

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ButtonComponent fires an input event when activated. It carries no value;
// wire OnChange in the registration options to react to presses.
type ButtonComponent struct {
	base
	emitter
}

// Button creates a button widget.
func Button(label string) *ButtonComponent {
	return &ButtonComponent{base: base{label: label}}
}

// Update implements Component. Enter or space presses the button.
func (b *ButtonComponent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter", " ":
		b.emitInput(b.label)
	}
	return nil
}

// View implements Component.
func (b *ButtonComponent) View(th Theme, width int) string {
	style := th.mutedStyle()
	if b.focused {
		style = th.accentStyle().Bold(true)
	}
	return style.MaxWidth(width).Render("[ " + strings.TrimSpace(b.label) + " ]")
}

var (
	_ Component = (*ButtonComponent)(nil)
	_ Emitter   = (*ButtonComponent)(nil)
	_ Focusable = (*ButtonComponent)(nil)
)
