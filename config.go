package tweak

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Align positions the panel against the host view's edge. The zero value is
// AlignRight, the default.
type Align int

const (
	AlignRight Align = iota
	AlignLeft
)

// String implements fmt.Stringer.
func (a Align) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "right"
}

func parseAlign(s string) Align {
	if s == "left" {
		return AlignLeft
	}
	return AlignRight
}

// Config carries the panel's construction options. Every field is optional;
// zero values resolve to the documented defaults and malformed values fall
// back silently rather than failing.
type Config struct {
	Width     int           // panel width in columns (default 34)
	Height    int           // panel body height in rows (default 16)
	Align     Align         // which edge the panel hugs (default right)
	Opacity   float64       // 0..1 foreground fade (default 1)
	BarMode   BarMode       // menu bar placement (default offset)
	BarTitle  string        // menu bar text (default "tweak")
	ToggleKey string        // key that toggles the panel (default "ctrl+g")
	PollEvery time.Duration // poll loop cadence (default 100ms)
	Theme     string        // built-in theme name (default dark)
	ThemeSet  *Theme        // full theme token, wins over Theme when set
	Debug     bool          // write a debug log under ~/.tweak/logs
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Width:     34,
		Height:    16,
		Align:     AlignRight,
		Opacity:   1,
		BarMode:   BarOffset,
		BarTitle:  "tweak",
		ToggleKey: "ctrl+g",
		PollEvery: 100 * time.Millisecond,
		Theme:     DefaultTheme,
	}
}

// normalized substitutes defaults for zero or malformed fields.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Opacity <= 0 || c.Opacity > 1 {
		c.Opacity = def.Opacity
	}
	if c.BarTitle == "" {
		c.BarTitle = def.BarTitle
	}
	if c.ToggleKey == "" {
		c.ToggleKey = def.ToggleKey
	}
	if c.PollEvery <= 0 {
		c.PollEvery = def.PollEvery
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	return c
}

// resolveTheme picks the theme token for this config: an explicit token
// wins, then the named theme, then dark. Opacity fades are applied here.
func (c Config) resolveTheme() Theme {
	var th Theme
	if c.ThemeSet != nil {
		th = *c.ThemeSet
	} else {
		th = ResolveTheme(c.Theme)
	}
	return th.Faded(c.Opacity)
}

// fileConfig is the YAML shape of a panel config file. Enum fields are
// strings here and parsed leniently; unknown values fall back to defaults
// like any other malformed option.
type fileConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Align     string  `yaml:"align"`
	Opacity   float64 `yaml:"opacity"`
	Bar       string  `yaml:"bar"`
	BarTitle  string  `yaml:"bar_title"`
	ToggleKey string  `yaml:"toggle_key"`
	PollMS    int     `yaml:"poll_ms"`
	Theme     string  `yaml:"theme"`
	Debug     bool    `yaml:"debug"`
}

// LoadConfig reads a YAML panel configuration. Missing fields take the
// documented defaults; only an unreadable or unparsable file is an error.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tweak: read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("tweak: parse config %s: %w", path, err)
	}
	cfg := Config{
		Width:     fc.Width,
		Height:    fc.Height,
		Align:     parseAlign(fc.Align),
		Opacity:   fc.Opacity,
		BarMode:   parseBarMode(fc.Bar),
		BarTitle:  fc.BarTitle,
		ToggleKey: fc.ToggleKey,
		PollEvery: time.Duration(fc.PollMS) * time.Millisecond,
		Theme:     fc.Theme,
		Debug:     fc.Debug,
	}
	return cfg.normalized(), nil
}
