// Package tweak is an embeddable tweak panel for terminal applications: a
// column of sliders, toggles, buttons and folders that binds to your
// program's values and keeps itself in sync.
//
// The panel is a bubbletea model. Embed it in a host program and forward
// messages, or call Run to take over the terminal:
//
//	type scene struct{ Speed float64; Paused bool }
//
//	s := &scene{Speed: 1}
//	g := tweak.New(tweak.Config{Theme: "midnight"})
//	g.Register(
//		tweak.Options{Type: "range", Label: "speed", Object: s, Property: "Speed", Min: 0, Max: 10},
//		tweak.Options{Type: "toggle", Label: "paused", Object: s, Property: "Paused"},
//	)
//	g.Run()
//
// Bound values flow both ways: widget input writes through to the object,
// and a poll loop picks up external changes to re-sync the display.
package tweak

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entry is one registered widget: the component, its originating options,
// and the binding when Object/Property were supplied.
type entry struct {
	comp Component
	opts Options
	bind *binding
}

// Gui is the root controller. It owns the bar, panel and toaster, holds the
// ordered list of registered widgets, and drives the poll loop.
type Gui struct {
	cfg     Config
	theme   Theme
	bar     *menuBar
	panel   *panel
	toaster *toaster
	loaded  []*entry

	visible bool
	polling bool
	width   int // host width, from WindowSizeMsg
	height  int // host height

	toggleKey key.Binding
	log       *debugLogger
}

// New builds a panel from the given configuration. Zero or malformed fields
// fall back to defaults; construction itself cannot fail.
func New(cfg Config) *Gui {
	cfg = cfg.normalized()

	g := &Gui{
		cfg:     cfg,
		theme:   cfg.resolveTheme(),
		panel:   newPanel(cfg.Width-2, cfg.Height),
		toaster: &toaster{},
		polling: true,
		toggleKey: key.NewBinding(
			key.WithKeys(cfg.ToggleKey),
			key.WithHelp(cfg.ToggleKey, "toggle panel"),
		),
	}

	if cfg.BarMode != BarNone {
		g.bar = &menuBar{title: cfg.BarTitle, mode: cfg.BarMode}
	}
	// With a bar the user opens the panel; without one there is nothing to
	// toggle with, so it starts visible.
	g.visible = g.bar == nil

	if cfg.Debug {
		if log, err := newDebugLogger(); err == nil {
			g.log = log
		}
	}
	return g
}

// Theme returns the resolved theme token.
func (g *Gui) Theme() Theme { return g.theme }

// Visible reports whether the panel body is currently shown.
func (g *Gui) Visible() bool { return g.visible }

// Components returns the registered widgets in registration order.
func (g *Gui) Components() []Component {
	out := make([]Component, len(g.loaded))
	for i, e := range g.loaded {
		out[i] = e.comp
	}
	return out
}

// Register registers one or more widgets in order. The first failure stops
// the batch and is returned; widgets registered before it stay registered.
func (g *Gui) Register(opts ...Options) error {
	for _, o := range opts {
		if err := g.register(o); err != nil {
			return err
		}
	}
	return nil
}

// RegisterWith registers a batch with shared overrides merged into each
// item. Overrides win on key collision.
func (g *Gui) RegisterWith(shared Options, opts ...Options) error {
	for _, o := range opts {
		if err := g.register(o.merge(shared)); err != nil {
			return err
		}
	}
	return nil
}

// register validates, constructs and wires a single widget.
func (g *Gui) register(o Options) error {
	// Binding first: a bad Object/Property pair must not create a widget.
	var bind *binding
	if o.Object != nil || o.Property != "" {
		if o.Object == nil || o.Property == "" {
			err := &BindError{Property: o.Property, Reason: "Object and Property must be set together"}
			g.log.printf("register %q: %v", o.Label, err)
			return err
		}
		var err error
		if bind, err = newBinding(o.Object, o.Property); err != nil {
			g.log.printf("register %q: %v", o.Label, err)
			return err
		}
	}

	// Resolve the parent container before constructing: folders must be
	// registered before their children.
	var parent Container
	if o.Folder != "" {
		for _, e := range g.loaded {
			if c, ok := e.comp.(Container); ok && c.Label() == o.Folder {
				parent = c
				break
			}
		}
		if parent == nil {
			err := &UnknownFolderError{Folder: o.Folder}
			g.log.printf("register %q: %v", o.Label, err)
			return err
		}
	}

	comp, err := newComponent(o)
	if err != nil {
		g.log.printf("register %q: %v", o.Label, err)
		return err
	}

	// Seed the initial value: the bound property wins over Initial.
	initial := o.Initial
	if bind != nil {
		initial = bind.get()
		bind.old = initial
	}
	if v, ok := comp.(Valuer); ok && initial != nil {
		v.SetValue(initial)
	}

	// Wire events. The write-back listener registers before the caller's
	// OnChange so the bound property is current when OnChange fires.
	if em, ok := comp.(Emitter); ok {
		if bind != nil {
			em.OnInput(func(v any) {
				if err := bind.set(v); err != nil {
					g.log.printf("input %q: %v", o.Label, err)
					return
				}
				bind.old = bind.get()
			})
		}
		if o.OnChange != nil {
			em.OnInput(o.OnChange)
		}
		if o.OnInitialize != nil {
			em.OnInitialized(o.OnInitialize)
		}
	}

	if parent != nil {
		parent.Add(comp)
	} else {
		g.panel.add(comp)
	}
	g.loaded = append(g.loaded, &entry{comp: comp, opts: o, bind: bind})

	// Announce construction now that listeners are attached.
	if e, ok := comp.(interface{ emitInitialized(any) }); ok {
		var val any
		if v, ok := comp.(Valuer); ok {
			val = v.Value()
		}
		e.emitInitialized(val)
	}

	g.log.printf("register %q type=%s bound=%t", o.Label, o.Type, bind != nil)
	return nil
}

// Toast shows a transient notification with the default stay and
// transition. The returned command must reach the runtime to take effect.
func (g *Gui) Toast(message string) tea.Cmd {
	return g.ToastFor(message, DefaultToastStay, DefaultToastTransition)
}

// ToastFor shows a transient notification for stay, with transition-long
// fade windows either side.
func (g *Gui) ToastFor(message string, stay, transition time.Duration) tea.Cmd {
	return func() tea.Msg {
		return showToastMsg{message: message, stay: stay, transition: transition}
	}
}

// Init implements tea.Model: it starts the poll loop and the text cursor.
func (g *Gui) Init() tea.Cmd {
	return tea.Batch(pollTick(g.cfg.PollEvery), textinput.Blink)
}

// Update implements tea.Model.
func (g *Gui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width, g.height = msg.Width, msg.Height
		return g, nil

	case pollMsg:
		if !g.polling {
			return g, nil
		}
		g.scan()
		return g, pollTick(g.cfg.PollEvery)

	case showToastMsg:
		return g, g.toaster.push(msg)

	case toastExpiredMsg:
		g.toaster.expire(msg.id)
		return g, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return g, tea.Quit
		}
		if g.bar != nil && key.Matches(msg, g.toggleKey) {
			g.visible = !g.visible
			return g, nil
		}
		if !g.visible {
			return g, nil
		}
		return g, g.panel.Update(msg)
	}

	return g, g.panel.Update(msg)
}

// View implements tea.Model, composing bar, panel body and toasts into a
// column aligned against the host edge.
func (g *Gui) View() string {
	th := g.theme
	width := g.cfg.Width

	var parts []string
	if g.bar != nil && g.bar.mode != BarOverlay {
		parts = append(parts, g.bar.view(th, width, g.visible))
		if g.bar.mode == BarOffset {
			parts = append(parts, "")
		}
	}

	if g.visible {
		body := lipgloss.NewStyle().
			Border(th.Border).
			BorderForeground(th.Muted).
			Width(width - 2).
			Render(g.panel.View(th, width-2))
		if g.bar != nil && g.bar.mode == BarOverlay {
			// The bar replaces the panel's top border row.
			lines := strings.SplitN(body, "\n", 2)
			body = g.bar.view(th, width, true)
			if len(lines) == 2 {
				body += "\n" + lines[1]
			}
		}
		parts = append(parts, body)
	} else if g.bar != nil && g.bar.mode == BarOverlay {
		parts = append(parts, g.bar.view(th, width, false))
	}

	if toastView := g.toaster.view(th, width); toastView != "" {
		parts = append(parts, toastView)
	}

	column := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if g.width > width {
		pos := lipgloss.Right
		if g.cfg.Align == AlignLeft {
			pos = lipgloss.Left
		}
		return lipgloss.PlaceHorizontal(g.width, pos, column)
	}
	return column
}

// Run takes over the terminal and runs the panel as a standalone program
// until the user quits with ctrl+c.
func (g *Gui) Run() error {
	p := tea.NewProgram(g, tea.WithAltScreen())
	_, err := p.Run()
	g.log.close()
	return err
}
