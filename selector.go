package tweak

import tea "github.com/charmbracelet/bubbletea"

// SelectComponent cycles through a fixed list of string choices.
type SelectComponent struct {
	base
	emitter
	choices []string
	index   int
}

// Select creates a select widget over the given choices.
func Select(label string, choices ...string) *SelectComponent {
	return &SelectComponent{
		base:    base{label: label},
		choices: choices,
	}
}

// Value implements Valuer, returning the current choice.
func (s *SelectComponent) Value() any {
	if len(s.choices) == 0 {
		return ""
	}
	return s.choices[s.index]
}

// SetValue implements Valuer. A string selects the matching choice; a
// numeric value selects by index. Unknown choices are ignored.
func (s *SelectComponent) SetValue(v any) {
	if str, ok := toString(v); ok {
		for i, c := range s.choices {
			if c == str {
				s.index = i
				return
			}
		}
		return
	}
	if f, ok := toFloat(v); ok {
		i := int(f)
		if i >= 0 && i < len(s.choices) {
			s.index = i
		}
	}
}

// Update implements Component. Left/right cycle through the choices,
// wrapping at either end.
func (s *SelectComponent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(s.choices) == 0 {
		return nil
	}
	switch key.String() {
	case "left", "h":
		s.index = (s.index + len(s.choices) - 1) % len(s.choices)
	case "right", "l", "enter", " ":
		s.index = (s.index + 1) % len(s.choices)
	default:
		return nil
	}
	s.emitInput(s.choices[s.index])
	return nil
}

// View implements Component.
func (s *SelectComponent) View(th Theme, width int) string {
	current := ""
	if len(s.choices) > 0 {
		current = s.choices[s.index]
	}
	style := th.valueStyle()
	if s.focused {
		style = th.accentStyle()
	}
	return th.labelStyle().Render(s.label) + style.MaxWidth(width-th.LabelWidth).Render("‹ "+current+" ›")
}

var (
	_ Component = (*SelectComponent)(nil)
	_ Valuer    = (*SelectComponent)(nil)
	_ Emitter   = (*SelectComponent)(nil)
	_ Focusable = (*SelectComponent)(nil)
)
