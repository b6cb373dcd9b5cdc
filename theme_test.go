package tweak

import "testing"

func TestResolveTheme(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		for _, name := range []string{"dark", "light", "midnight", "contrast"} {
			if got := ResolveTheme(name).Name; got != name {
				t.Errorf("ResolveTheme(%q).Name = %q", name, got)
			}
		}
	})

	t.Run("UnknownFallsBackToDark", func(t *testing.T) {
		if got := ResolveTheme("solarized").Name; got != "dark" {
			t.Errorf("got %q, want dark", got)
		}
	})

	t.Run("EmptyFallsBackToDark", func(t *testing.T) {
		if got := ResolveTheme("").Name; got != "dark" {
			t.Errorf("got %q, want dark", got)
		}
	})
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 4 {
		t.Fatalf("expected 4 built-in themes, got %d", len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["dark"] {
		t.Error("dark theme missing")
	}
}

func TestFaded(t *testing.T) {
	th := ResolveTheme("dark")

	t.Run("FullOpacityUnchanged", func(t *testing.T) {
		if got := th.Faded(1); got.Text != th.Text {
			t.Errorf("opacity 1 must not change colors: %v -> %v", th.Text, got.Text)
		}
	})

	t.Run("OutOfRangeUnchanged", func(t *testing.T) {
		if got := th.Faded(-0.5); got.Text != th.Text {
			t.Error("negative opacity must pass through")
		}
		if got := th.Faded(2); got.Text != th.Text {
			t.Error("opacity above 1 must pass through")
		}
	})

	t.Run("HalfFadesTowardBackground", func(t *testing.T) {
		got := th.Faded(0.5)
		if got.Text == th.Text {
			t.Error("expected text color to move toward the background")
		}
		if got.Background != th.Background {
			t.Error("background must stay put")
		}
	})

	t.Run("ZeroIsBackground", func(t *testing.T) {
		got := th.Faded(0)
		if string(got.Text) != string(th.Background) {
			t.Errorf("opacity 0: got %v, want %v", got.Text, th.Background)
		}
	})
}

func TestBlend(t *testing.T) {
	t.Run("Endpoints", func(t *testing.T) {
		a, b := themes["dark"].Background, themes["dark"].Text
		if got := blend(a, b, 0); string(got) != string(a) {
			t.Errorf("t=0: got %v, want %v", got, a)
		}
		if got := blend(a, b, 1); string(got) != string(b) {
			t.Errorf("t=1: got %v, want %v", got, b)
		}
	})

	t.Run("UnparsablePassesThrough", func(t *testing.T) {
		if got := blend("nothex", "#ffffff", 0.5); string(got) != "#ffffff" {
			t.Errorf("got %v", got)
		}
	})
}
