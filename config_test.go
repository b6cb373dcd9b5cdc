package tweak

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigNormalized(t *testing.T) {
	t.Run("ZeroTakesDefaults", func(t *testing.T) {
		got := Config{}.normalized()
		def := DefaultConfig()
		if got.Width != def.Width || got.Height != def.Height {
			t.Errorf("size: got %dx%d", got.Width, got.Height)
		}
		if got.PollEvery != 100*time.Millisecond {
			t.Errorf("poll: got %v", got.PollEvery)
		}
		if got.Theme != "dark" {
			t.Errorf("theme: got %q", got.Theme)
		}
		if got.Align != AlignRight {
			t.Errorf("align: got %v", got.Align)
		}
		if got.BarMode != BarOffset {
			t.Errorf("bar: got %v", got.BarMode)
		}
	})

	t.Run("MalformedFallsBack", func(t *testing.T) {
		got := Config{Width: -10, Opacity: 3, PollEvery: -time.Second}.normalized()
		if got.Width != DefaultConfig().Width {
			t.Errorf("width: got %d", got.Width)
		}
		if got.Opacity != 1 {
			t.Errorf("opacity: got %v", got.Opacity)
		}
		if got.PollEvery != 100*time.Millisecond {
			t.Errorf("poll: got %v", got.PollEvery)
		}
	})

	t.Run("ExplicitSurvives", func(t *testing.T) {
		got := Config{Width: 50, Opacity: 0.5, Theme: "light"}.normalized()
		if got.Width != 50 || got.Opacity != 0.5 || got.Theme != "light" {
			t.Errorf("got %+v", got)
		}
	})
}

func TestConfigResolveTheme(t *testing.T) {
	t.Run("NamedTheme", func(t *testing.T) {
		cfg := Config{Theme: "light", Opacity: 1}.normalized()
		if got := cfg.resolveTheme().Name; got != "light" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("UnknownNameIsDark", func(t *testing.T) {
		cfg := Config{Theme: "nope", Opacity: 1}.normalized()
		if got := cfg.resolveTheme().Name; got != "dark" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("TokenWinsOverName", func(t *testing.T) {
		custom := ResolveTheme("contrast")
		cfg := Config{Theme: "light", ThemeSet: &custom, Opacity: 1}.normalized()
		if got := cfg.resolveTheme().Name; got != "contrast" {
			t.Errorf("got %q", got)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tweak.yaml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("FullFile", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, `
width: 44
height: 20
align: left
opacity: 0.8
bar: none
bar_title: debug
toggle_key: ctrl+d
poll_ms: 250
theme: light
debug: true
`))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Width != 44 || cfg.Height != 20 {
			t.Errorf("size: got %dx%d", cfg.Width, cfg.Height)
		}
		if cfg.Align != AlignLeft {
			t.Errorf("align: got %v", cfg.Align)
		}
		if cfg.Opacity != 0.8 {
			t.Errorf("opacity: got %v", cfg.Opacity)
		}
		if cfg.BarMode != BarNone {
			t.Errorf("bar: got %v", cfg.BarMode)
		}
		if cfg.BarTitle != "debug" || cfg.ToggleKey != "ctrl+d" {
			t.Errorf("bar fields: got %q %q", cfg.BarTitle, cfg.ToggleKey)
		}
		if cfg.PollEvery != 250*time.Millisecond {
			t.Errorf("poll: got %v", cfg.PollEvery)
		}
		if cfg.Theme != "light" || !cfg.Debug {
			t.Errorf("got theme=%q debug=%t", cfg.Theme, cfg.Debug)
		}
	})

	t.Run("EmptyFileIsDefaults", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, ""))
		if err != nil {
			t.Fatal(err)
		}
		def := DefaultConfig()
		if cfg.Width != def.Width || cfg.Theme != def.Theme || cfg.PollEvery != def.PollEvery {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("UnknownEnumsFallBack", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, "align: center\nbar: sideways\n"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Align != AlignRight || cfg.BarMode != BarOffset {
			t.Errorf("got align=%v bar=%v", cfg.Align, cfg.BarMode)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("BadYAML", func(t *testing.T) {
		if _, err := LoadConfig(write(t, "width: [not a number")); err == nil {
			t.Fatal("expected an error")
		}
	})
}
