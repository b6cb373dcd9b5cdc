package tweak

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Defaults for Toast.
const (
	DefaultToastStay       = 5 * time.Second
	DefaultToastTransition = 100 * time.Millisecond
)

// showToastMsg enqueues a toast. Produced by Gui.Toast / Gui.ToastFor so a
// toast can be requested from any command without touching shared state.
type showToastMsg struct {
	message    string
	stay       time.Duration
	transition time.Duration
}

// toastExpiredMsg removes a toast once its stay plus transitions elapse.
type toastExpiredMsg struct {
	id string
}

// notice is one live toast.
type notice struct {
	id         string
	message    string
	transition time.Duration
	born       time.Time
	deadline   time.Time
}

// toaster holds the ordered queue of live toasts. Oldest first.
type toaster struct {
	notices []notice
}

// push appends a toast and returns the command that expires it. The toast
// lives for stay plus a transition window on either side.
func (t *toaster) push(msg showToastMsg) tea.Cmd {
	n := notice{
		id:         uuid.NewString(),
		message:    msg.message,
		transition: msg.transition,
		born:       time.Now(),
		deadline:   time.Now().Add(msg.stay + 2*msg.transition),
	}
	t.notices = append(t.notices, n)
	return tea.Tick(msg.stay+2*msg.transition, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: n.id}
	})
}

// expire removes the toast with the given id, if it is still queued.
func (t *toaster) expire(id string) {
	for i, n := range t.notices {
		if n.id == id {
			t.notices = append(t.notices[:i], t.notices[i+1:]...)
			return
		}
	}
}

// len reports the number of live toasts.
func (t *toaster) len() int { return len(t.notices) }

// view renders the toast stack. A toast inside its entry or exit transition
// window renders faded.
func (t *toaster) view(th Theme, width int) string {
	if len(t.notices) == 0 {
		return ""
	}
	now := time.Now()
	solid := lipgloss.NewStyle().
		Foreground(th.Text).
		Background(th.Surface).
		Width(width).
		Padding(0, 1)
	faded := solid.Foreground(th.Muted)

	rows := make([]string, 0, len(t.notices))
	for _, n := range t.notices {
		style := solid
		if now.Sub(n.born) < n.transition || n.deadline.Sub(now) < n.transition {
			style = faded
		}
		rows = append(rows, style.Render(n.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
