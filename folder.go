package tweak

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FolderComponent nests further widgets under a collapsible header.
// Children register through the controller by naming the folder's label.
type FolderComponent struct {
	base
	children []Component
	open     bool
}

// Folder creates a folder widget, initially collapsed.
func Folder(label string) *FolderComponent {
	return &FolderComponent{base: base{label: label}}
}

// Opened presets whether the folder starts expanded.
func (f *FolderComponent) Opened(open bool) *FolderComponent {
	f.open = open
	return f
}

// Open reports whether the folder is expanded.
func (f *FolderComponent) Open() bool { return f.open }

// Add implements Container.
func (f *FolderComponent) Add(child Component) {
	f.children = append(f.children, child)
}

// Children implements Container.
func (f *FolderComponent) Children() []Component { return f.children }

// Update implements Component. Enter or space toggles the fold.
func (f *FolderComponent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter", " ":
		f.open = !f.open
	case "left":
		f.open = false
	case "right":
		f.open = true
	}
	return nil
}

// View implements Component. Children render indented beneath the header
// while the folder is open.
func (f *FolderComponent) View(th Theme, width int) string {
	glyph := th.FolderShut
	if f.open {
		glyph = th.FolderOpen
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(th.Text).
		Background(th.Surface).
		Width(width)
	if f.focused {
		headerStyle = headerStyle.Foreground(th.Accent).Bold(true)
	}
	header := headerStyle.Render(glyph + " " + f.label)

	if !f.open || len(f.children) == 0 {
		return header
	}

	rows := make([]string, 0, len(f.children)+1)
	rows = append(rows, header)
	indent := lipgloss.NewStyle().PaddingLeft(2)
	for _, child := range f.children {
		rows = append(rows, indent.Render(child.View(th, width-2)))
	}
	return strings.Join(rows, "\n")
}

var (
	_ Component = (*FolderComponent)(nil)
	_ Container = (*FolderComponent)(nil)
	_ Focusable = (*FolderComponent)(nil)
)
