package tweak

import (
	"strings"
	"testing"
	"time"
)

func TestToast(t *testing.T) {
	t.Run("ToastCarriesDefaults", func(t *testing.T) {
		g := New(Config{})
		msg, ok := g.Toast("saved")().(showToastMsg)
		if !ok {
			t.Fatalf("got %T, want showToastMsg", msg)
		}
		if msg.message != "saved" {
			t.Errorf("message: got %q", msg.message)
		}
		if msg.stay != DefaultToastStay || msg.transition != DefaultToastTransition {
			t.Errorf("timing: got %v/%v", msg.stay, msg.transition)
		}
	})

	t.Run("ToastForOverridesTiming", func(t *testing.T) {
		g := New(Config{})
		msg := g.ToastFor("done", 2*time.Second, 50*time.Millisecond)().(showToastMsg)
		if msg.stay != 2*time.Second || msg.transition != 50*time.Millisecond {
			t.Errorf("timing: got %v/%v", msg.stay, msg.transition)
		}
	})

	t.Run("UpdateQueuesAndSchedulesExpiry", func(t *testing.T) {
		g := New(Config{})
		_, cmd := g.Update(showToastMsg{message: "hi", stay: time.Second, transition: time.Millisecond})
		if g.toaster.len() != 1 {
			t.Fatalf("queued: got %d, want 1", g.toaster.len())
		}
		if cmd == nil {
			t.Fatal("expected an expiry command")
		}
	})

	t.Run("ExpiryRemovesById", func(t *testing.T) {
		g := New(Config{})
		g.toaster.push(showToastMsg{message: "one", stay: time.Second, transition: time.Millisecond})
		g.toaster.push(showToastMsg{message: "two", stay: time.Second, transition: time.Millisecond})
		first := g.toaster.notices[0].id

		g.Update(toastExpiredMsg{id: first})
		if g.toaster.len() != 1 {
			t.Fatalf("remaining: got %d, want 1", g.toaster.len())
		}
		if got := g.toaster.notices[0].message; got != "two" {
			t.Errorf("survivor: got %q", got)
		}
	})

	t.Run("UnknownIdIsIgnored", func(t *testing.T) {
		tt := &toaster{}
		tt.push(showToastMsg{message: "hi", stay: time.Second, transition: time.Millisecond})
		tt.expire("no-such-id")
		if tt.len() != 1 {
			t.Errorf("got %d, want 1", tt.len())
		}
	})

	t.Run("ViewShowsMessages", func(t *testing.T) {
		tt := &toaster{}
		tt.push(showToastMsg{message: "alpha", stay: time.Second, transition: 0})
		tt.push(showToastMsg{message: "beta", stay: time.Second, transition: 0})
		out := tt.view(ResolveTheme("dark"), 30)
		if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") {
			t.Errorf("view missing messages:\n%s", out)
		}
	})

	t.Run("EmptyViewIsEmpty", func(t *testing.T) {
		tt := &toaster{}
		if out := tt.view(ResolveTheme("dark"), 30); out != "" {
			t.Errorf("got %q", out)
		}
	})
}
