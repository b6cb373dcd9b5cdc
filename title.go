package tweak

import tea "github.com/charmbracelet/bubbletea"

// TitleComponent is a static section heading. It holds no value and takes no
// part in focus traversal.
type TitleComponent struct {
	label string
}

// Title creates a section heading.
func Title(label string) *TitleComponent {
	return &TitleComponent{label: label}
}

// Label implements Component.
func (t *TitleComponent) Label() string { return t.label }

// Update implements Component. Titles ignore input.
func (t *TitleComponent) Update(tea.Msg) tea.Cmd { return nil }

// View implements Component.
func (t *TitleComponent) View(th Theme, width int) string {
	return th.accentStyle().Bold(true).MaxWidth(width).Render(t.label)
}

var _ Component = (*TitleComponent)(nil)
