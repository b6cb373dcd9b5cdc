package tweak

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollMsg is a single poll tick. Ticks are rescheduled only after a scan
// completes, so a slow scan never stacks ticks, and the runtime's renderer
// gates how often a tick's effects reach the screen.
type pollMsg time.Time

// pollTick schedules the next poll tick.
func pollTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// scan walks the loaded components in registration order and pushes any
// bound value that changed since the last look into its widget. The cache
// updates alongside so an unchanged value never causes a widget update.
func (g *Gui) scan() {
	for _, e := range g.loaded {
		if e.bind == nil {
			continue
		}
		cur := e.bind.get()
		if !e.bind.changed(cur) {
			continue
		}
		e.bind.old = cur
		if v, ok := e.comp.(Valuer); ok {
			v.SetValue(cur)
			g.log.printf("poll: %s <- %v", e.comp.Label(), cur)
		}
	}
}

// Sync runs one poll scan immediately, outside the timer cadence.
func (g *Gui) Sync() {
	g.scan()
}

// StopPolling halts the poll loop. The loop dies when its next tick lands.
func (g *Gui) StopPolling() {
	g.polling = false
}

// ResumePolling restarts the poll loop. The returned command must be handed
// to the runtime; until it runs no ticks are scheduled.
func (g *Gui) ResumePolling() tea.Cmd {
	if g.polling {
		return nil
	}
	g.polling = true
	return pollTick(g.cfg.PollEvery)
}

// Polling reports whether the poll loop is live.
func (g *Gui) Polling() bool { return g.polling }
