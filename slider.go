package tweak

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SliderComponent is a numeric widget with a min/max range and step. Values
// pushed from outside are clamped into range; arrow keys nudge by one step.
type SliderComponent struct {
	base
	emitter
	value float64
	min   float64
	max   float64
	step  float64
}

// Slider creates a slider widget over the range 0..100 with step 1.
func Slider(label string) *SliderComponent {
	return &SliderComponent{
		base: base{label: label},
		max:  100,
		step: 1,
	}
}

// Range sets the slider's bounds. A reversed or empty range falls back to
// 0..100.
func (s *SliderComponent) Range(min, max float64) *SliderComponent {
	if max <= min {
		min, max = 0, 100
	}
	s.min, s.max = min, max
	s.value = clamp(s.value, min, max)
	return s
}

// Step sets the per-keypress increment. Non-positive steps fall back to 1.
func (s *SliderComponent) Step(step float64) *SliderComponent {
	if step <= 0 {
		step = 1
	}
	s.step = step
	return s
}

// Value implements Valuer.
func (s *SliderComponent) Value() any { return s.value }

// SetValue implements Valuer, accepting any numeric kind.
func (s *SliderComponent) SetValue(v any) {
	if f, ok := toFloat(v); ok {
		s.value = clamp(f, s.min, s.max)
	}
}

// Update implements Component. Left/h decrements, right/l increments.
func (s *SliderComponent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "h":
		s.nudge(-s.step)
	case "right", "l":
		s.nudge(s.step)
	}
	return nil
}

func (s *SliderComponent) nudge(delta float64) {
	next := clamp(s.value+delta, s.min, s.max)
	if next == s.value {
		return
	}
	s.value = next
	s.emitInput(s.value)
}

// View implements Component.
func (s *SliderComponent) View(th Theme, width int) string {
	text := formatValue(s.value)

	barWidth := width - th.LabelWidth - len(text) - 2
	if barWidth < 4 {
		barWidth = 4
	}
	span := s.max - s.min
	filled := int(float64(barWidth)*(s.value-s.min)/span + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	fillStyle := th.accentStyle()
	if !s.focused {
		fillStyle = th.valueStyle()
	}
	bar := fillStyle.Render(strings.Repeat(string(th.SliderFill), filled)) +
		th.mutedStyle().Render(strings.Repeat(string(th.SliderEmpty), barWidth-filled))

	return th.labelStyle().Render(s.label) + bar + " " + th.valueStyle().Render(text)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

var (
	_ Component = (*SliderComponent)(nil)
	_ Valuer    = (*SliderComponent)(nil)
	_ Emitter   = (*SliderComponent)(nil)
	_ Focusable = (*SliderComponent)(nil)
)
