package tweak

// Constructor builds a widget variant from registration options.
type Constructor func(opts Options) Component

// registry maps widget type tags to constructors. The built-in set is
// closed; RegisterType can extend it before any panels are built.
var registry = map[string]Constructor{
	"title":  func(o Options) Component { return Title(o.Label) },
	"button": func(o Options) Component { return Button(o.Label) },
	"toggle": func(o Options) Component { return Toggle(o.Label) },
	"range": func(o Options) Component {
		s := Slider(o.Label)
		if o.Min != 0 || o.Max != 0 {
			s.Range(o.Min, o.Max)
		}
		if o.Step != 0 {
			s.Step(o.Step)
		}
		return s
	},
	"select":  func(o Options) Component { return Select(o.Label, o.Choices...) },
	"text":    func(o Options) Component { return TextField(o.Label) },
	"color":   func(o Options) Component { return ColorPicker(o.Label) },
	"display": func(o Options) Component { return Display(o.Label) },
	"folder":  func(o Options) Component { return Folder(o.Label).Opened(o.Open) },
}

// RegisterType adds a widget constructor under the given type tag,
// replacing any existing registration for that tag.
func RegisterType(tag string, ctor Constructor) {
	registry[tag] = ctor
}

// newComponent dispatches options to the constructor registered for their
// type tag. An unrecognized tag is a configuration error, never a silently
// blank widget.
func newComponent(opts Options) (Component, error) {
	ctor, ok := registry[opts.Type]
	if !ok {
		return nil, &UnknownTypeError{Type: opts.Type}
	}
	return ctor(opts), nil
}
