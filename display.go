package tweak

import tea "github.com/charmbracelet/bubbletea"

// DisplayComponent is a read-only monitor for a bound value. It emits no
// events and takes no part in focus traversal; the poll loop pushes fresh
// values into it.
type DisplayComponent struct {
	label string
	value any
}

// Display creates a read-only value monitor.
func Display(label string) *DisplayComponent {
	return &DisplayComponent{label: label}
}

// Label implements Component.
func (d *DisplayComponent) Label() string { return d.label }

// Value implements Valuer.
func (d *DisplayComponent) Value() any { return d.value }

// SetValue implements Valuer.
func (d *DisplayComponent) SetValue(v any) { d.value = v }

// Update implements Component. Displays ignore input.
func (d *DisplayComponent) Update(tea.Msg) tea.Cmd { return nil }

// View implements Component.
func (d *DisplayComponent) View(th Theme, width int) string {
	return th.labelStyle().Render(d.label) +
		th.valueStyle().MaxWidth(width-th.LabelWidth).Render(formatValue(d.value))
}

var (
	_ Component = (*DisplayComponent)(nil)
	_ Valuer    = (*DisplayComponent)(nil)
)
