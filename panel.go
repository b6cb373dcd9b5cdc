package tweak

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// panel is the scrollable container holding the registered widgets. It owns
// focus traversal and routes input to the focused widget; scrolling rides a
// bubbles viewport.
type panel struct {
	items    []Component
	viewport viewport.Model
	focus    Component
	keys     panelKeys
}

type panelKeys struct {
	Next key.Binding
	Prev key.Binding
}

func newPanel(width, height int) *panel {
	return &panel{
		viewport: viewport.New(width, height),
		keys: panelKeys{
			Next: key.NewBinding(key.WithKeys("down", "tab")),
			Prev: key.NewBinding(key.WithKeys("up", "shift+tab")),
		},
	}
}

func (p *panel) add(c Component) {
	p.items = append(p.items, c)
	if p.focus == nil {
		if f, ok := c.(Focusable); ok {
			f.Focus()
			p.focus = c
		}
	}
}

// flatten returns every visible component in display order: top-level items
// followed by the children of each open folder, in place.
func (p *panel) flatten() []Component {
	var out []Component
	for _, c := range p.items {
		out = append(out, c)
		if f, ok := c.(*FolderComponent); ok && f.Open() {
			out = append(out, f.Children()...)
		}
	}
	return out
}

// focusables filters flatten down to components that take focus.
func (p *panel) focusables() []Focusable {
	var out []Focusable
	for _, c := range p.flatten() {
		if f, ok := c.(Focusable); ok {
			out = append(out, f)
		}
	}
	return out
}

// moveFocus shifts focus by delta through the visible focusable components,
// wrapping at either end.
func (p *panel) moveFocus(delta int) {
	items := p.focusables()
	if len(items) == 0 {
		return
	}
	cur := 0
	for i, f := range items {
		f.Blur()
		if f.(Component) == p.focus {
			cur = i
		}
	}
	next := (cur + delta + len(items)) % len(items)
	items[next].Focus()
	p.focus = items[next].(Component)
	p.ensureVisible()
}

// ensureVisible scrolls the viewport so the focused component's row is on
// screen.
func (p *panel) ensureVisible() {
	row := p.rowOf(p.focus)
	if row < 0 {
		return
	}
	if row < p.viewport.YOffset {
		p.viewport.SetYOffset(row)
	}
	if row >= p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(row - p.viewport.Height + 1)
	}
}

// rowOf walks the rendered layout counting rows until it reaches target.
// Every component occupies one row except open folders, whose children each
// take a row beneath the header.
func (p *panel) rowOf(target Component) int {
	row := 0
	for _, c := range p.items {
		if c == target {
			return row
		}
		row++
		if f, ok := c.(*FolderComponent); ok && f.Open() {
			for _, child := range f.Children() {
				if child == target {
					return row
				}
				row++
			}
		}
	}
	return -1
}

// Update routes input. Tab/shift+tab always traverse focus; up/down traverse
// unless a text field holds focus and needs the arrows for editing history.
func (p *panel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		if p.focus != nil {
			return tea.Batch(cmd, p.focus.Update(msg))
		}
		return cmd
	}

	switch {
	case key.Matches(keyMsg, p.keys.Next):
		if keyMsg.String() == "tab" || !p.focusIsTextField() {
			p.moveFocus(1)
			return nil
		}
	case key.Matches(keyMsg, p.keys.Prev):
		if keyMsg.String() == "shift+tab" || !p.focusIsTextField() {
			p.moveFocus(-1)
			return nil
		}
	}

	if p.focus != nil {
		cmd := p.focus.Update(msg)
		p.ensureVisible()
		return cmd
	}
	return nil
}

func (p *panel) focusIsTextField() bool {
	_, ok := p.focus.(*TextFieldComponent)
	return ok
}

// View renders all items into the viewport and returns the visible window.
func (p *panel) View(th Theme, width int) string {
	rows := make([]string, 0, len(p.items))
	for _, c := range p.items {
		rows = append(rows, c.View(th, width))
	}
	p.viewport.Width = width
	p.viewport.SetContent(strings.Join(rows, "\n"))
	return p.viewport.View()
}
