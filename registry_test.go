package tweak

import (
	"fmt"
	"testing"
)

func TestNewComponent(t *testing.T) {
	t.Run("Dispatch", func(t *testing.T) {
		cases := []struct {
			tag  string
			want string
		}{
			{"title", "*tweak.TitleComponent"},
			{"button", "*tweak.ButtonComponent"},
			{"toggle", "*tweak.ToggleComponent"},
			{"range", "*tweak.SliderComponent"},
			{"select", "*tweak.SelectComponent"},
			{"text", "*tweak.TextFieldComponent"},
			{"color", "*tweak.ColorComponent"},
			{"display", "*tweak.DisplayComponent"},
			{"folder", "*tweak.FolderComponent"},
		}
		for _, tc := range cases {
			t.Run(tc.tag, func(t *testing.T) {
				c, err := newComponent(Options{Type: tc.tag, Label: "x"})
				if err != nil {
					t.Fatal(err)
				}
				if got := fmt.Sprintf("%T", c); got != tc.want {
					t.Errorf("got %s, want %s", got, tc.want)
				}
				if c.Label() != "x" {
					t.Errorf("label: got %q", c.Label())
				}
			})
		}
	})

	t.Run("UnknownTag", func(t *testing.T) {
		_, err := newComponent(Options{Type: "knob"})
		if err == nil {
			t.Fatal("expected an error")
		}
		if err.Error() != `tweak: unknown widget type "knob"` {
			t.Errorf("got %q", err.Error())
		}
	})

	t.Run("RangeOptionsApplied", func(t *testing.T) {
		c, err := newComponent(Options{Type: "range", Label: "x", Min: 2, Max: 8, Step: 0.5})
		if err != nil {
			t.Fatal(err)
		}
		s := c.(*SliderComponent)
		if s.min != 2 || s.max != 8 || s.step != 0.5 {
			t.Errorf("got min=%v max=%v step=%v", s.min, s.max, s.step)
		}
	})

	t.Run("FolderOpenApplied", func(t *testing.T) {
		c, err := newComponent(Options{Type: "folder", Label: "x", Open: true})
		if err != nil {
			t.Fatal(err)
		}
		if !c.(*FolderComponent).Open() {
			t.Error("expected an open folder")
		}
	})

	t.Run("RegisterTypeExtends", func(t *testing.T) {
		RegisterType("blank", func(o Options) Component { return Title(o.Label) })
		defer delete(registry, "blank")
		if _, err := newComponent(Options{Type: "blank", Label: "x"}); err != nil {
			t.Fatal(err)
		}
	})
}
