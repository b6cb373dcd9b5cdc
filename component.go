package tweak

import tea "github.com/charmbracelet/bubbletea"

// Component is the interface all panel widgets implement.
type Component interface {
	// Label returns the widget's display label. Folder lookup during
	// registration matches on labels, first registered wins.
	Label() string

	// Update handles an input message while the widget is focused.
	Update(msg tea.Msg) tea.Cmd

	// View renders the widget into a string no wider than width columns.
	View(th Theme, width int) string
}

// Valuer is implemented by widgets that carry a value which can be read and
// pushed from outside. The poll loop uses SetValue to re-sync bound widgets;
// implementations must accept the bound property's native type.
type Valuer interface {
	Value() any
	SetValue(v any)
}

// Emitter is implemented by widgets that announce value changes. Rather than
// probing widgets for optional hooks at runtime, variants that emit events
// implement this capability explicitly.
type Emitter interface {
	// OnInput registers a listener for user-driven value changes.
	OnInput(fn func(v any))
	// OnInitialized registers a listener fired once the widget has been
	// constructed and seeded with its initial value.
	OnInitialized(fn func(v any))
}

// Focusable is implemented by widgets that take part in focus traversal.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Container is implemented by widgets that nest further widgets, i.e. the
// folder variant. Registration under a folder label appends to the first
// registered container whose label matches.
type Container interface {
	Component
	Add(child Component)
	Children() []Component
}

// base provides the label and focus state shared by every widget variant.
type base struct {
	label   string
	focused bool
}

func (b *base) Label() string { return b.label }
func (b *base) Focus()        { b.focused = true }
func (b *base) Blur()         { b.focused = false }
func (b *base) Focused() bool { return b.focused }

// emitter provides listener registration and dispatch for widgets that emit
// input and initialized events. Listeners are invoked in subscription order.
type emitter struct {
	inputFns []func(any)
	initFns  []func(any)
}

// OnInput implements Emitter.
func (e *emitter) OnInput(fn func(any)) {
	e.inputFns = append(e.inputFns, fn)
}

// OnInitialized implements Emitter.
func (e *emitter) OnInitialized(fn func(any)) {
	e.initFns = append(e.initFns, fn)
}

func (e *emitter) emitInput(v any) {
	for _, fn := range e.inputFns {
		fn(v)
	}
}

func (e *emitter) emitInitialized(v any) {
	for _, fn := range e.initFns {
		fn(v)
	}
}
