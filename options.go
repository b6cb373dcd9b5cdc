package tweak

// Options describes a single widget registration. Type selects the widget
// variant; everything else is optional. Fields past OnChange are
// widget-specific and ignored by variants that don't use them.
//
// When Object and Property are both set, the widget is bound: its initial
// value is read from the property at registration time and the poll loop
// keeps the two in sync afterwards. The property must already exist on the
// object or registration fails.
type Options struct {
	Type   string // widget type tag, required
	Label  string // display label, also the folder lookup key
	Folder string // label of a previously registered folder to nest under

	Object   any    // bind target: pointer to struct, or map[string]any
	Property string // bind target field name / map key
	Initial  any    // starting value; ignored when bound

	OnInitialize func(v any) // fired once after construction
	OnChange     func(v any) // fired after each user-driven change

	// range
	Min  float64
	Max  float64
	Step float64

	// select
	Choices []string

	// folder
	Open bool
}

// merge returns o with every set (non-zero) field of shared copied over it.
// Shared overrides win on collision; per-item fields survive otherwise.
// A false Open or zero Min/Max/Step in shared is indistinguishable from
// unset and does not override.
func (o Options) merge(shared Options) Options {
	if shared.Type != "" {
		o.Type = shared.Type
	}
	if shared.Label != "" {
		o.Label = shared.Label
	}
	if shared.Folder != "" {
		o.Folder = shared.Folder
	}
	if shared.Object != nil {
		o.Object = shared.Object
	}
	if shared.Property != "" {
		o.Property = shared.Property
	}
	if shared.Initial != nil {
		o.Initial = shared.Initial
	}
	if shared.OnInitialize != nil {
		o.OnInitialize = shared.OnInitialize
	}
	if shared.OnChange != nil {
		o.OnChange = shared.OnChange
	}
	if shared.Min != 0 {
		o.Min = shared.Min
	}
	if shared.Max != 0 {
		o.Max = shared.Max
	}
	if shared.Step != 0 {
		o.Step = shared.Step
	}
	if shared.Choices != nil {
		o.Choices = shared.Choices
	}
	if shared.Open {
		o.Open = true
	}
	return o
}
