// Command tweakdemo shows every widget variant wired to a live scene
// struct. The elapsed counter is mutated outside the panel and picked up by
// the poll loop; everything else flows the other way. Press ctrl+g to
// toggle the panel, ctrl+t for a toast, ctrl+c to quit.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kungfusheep/tweak"
)

type scene struct {
	Speed   float64
	Paused  bool
	Name    string
	Quality string
	Tint    string
	Elapsed float64
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	gui   *tweak.Gui
	scene *scene
	start *time.Time
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.gui.Init(), frame())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.scene.Paused {
			m.scene.Elapsed = time.Since(*m.start).Seconds()
		}
		return m, frame()
	case tea.KeyMsg:
		if msg.String() == "ctrl+t" {
			return m, m.gui.Toast("hello from tweak")
		}
	}
	_, cmd := m.gui.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.gui.View()
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tweakdemo must run in a terminal")
		os.Exit(1)
	}

	s := &scene{
		Speed:   1,
		Name:    "untitled",
		Quality: "high",
		Tint:    "#83a598",
	}

	start := time.Now()
	g := tweak.New(tweak.Config{Theme: "midnight", BarTitle: "demo"})
	err := g.Register(
		tweak.Options{Type: "title", Label: "scene controls"},
		tweak.Options{Type: "range", Label: "speed", Object: s, Property: "Speed", Min: 0, Max: 10, Step: 0.5},
		tweak.Options{Type: "toggle", Label: "paused", Object: s, Property: "Paused"},
		tweak.Options{Type: "text", Label: "name", Object: s, Property: "Name"},
		tweak.Options{Type: "select", Label: "quality", Object: s, Property: "Quality", Choices: []string{"low", "medium", "high"}},
		tweak.Options{Type: "color", Label: "tint", Object: s, Property: "Tint"},
		tweak.Options{Type: "folder", Label: "stats", Open: true},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = g.RegisterWith(tweak.Options{Folder: "stats"},
		tweak.Options{Type: "display", Label: "elapsed", Object: s, Property: "Elapsed"},
		tweak.Options{Type: "button", Label: "reset", OnChange: func(any) {
			start = time.Now()
			s.Elapsed = 0
		}},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := model{gui: g, scene: s, start: &start}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
