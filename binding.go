package tweak

import "reflect"

// binding ties a widget to a property on a host object. The poll loop reads
// through get and pushes changes into the widget; widget input events write
// back through set. old caches the last value seen on either path so a value
// that hasn't moved never causes a redundant widget update.
type binding struct {
	property string
	get      func() any
	set      func(v any) error
	old      any
}

// newBinding resolves object/property into accessors. Supported targets are
// a pointer to a struct with an exported field named property, and a
// map[string]any already containing the key. Anything else is a BindError:
// a binding is never valid for a property that doesn't exist yet.
func newBinding(object any, property string) (*binding, error) {
	if object == nil {
		return nil, &BindError{Property: property, Reason: "object is nil"}
	}

	if m, ok := object.(map[string]any); ok {
		if _, ok := m[property]; !ok {
			return nil, &BindError{Property: property, Reason: "key not present in map"}
		}
		return &binding{
			property: property,
			get:      func() any { return m[property] },
			set: func(v any) error {
				m[property] = v
				return nil
			},
		}, nil
	}

	rv := reflect.ValueOf(object)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, &BindError{Property: property, Reason: "object must be a map[string]any or pointer to struct"}
	}

	field := rv.Elem().FieldByName(property)
	if !field.IsValid() {
		return nil, &BindError{Property: property, Reason: "no such field"}
	}
	if !field.CanSet() {
		return nil, &BindError{Property: property, Reason: "field is not settable"}
	}

	return &binding{
		property: property,
		get:      func() any { return field.Interface() },
		set:      func(v any) error { return setReflect(field, property, v) },
	}, nil
}

// changed reports whether cur differs from the cached value. Equality is
// semantic (reflect.DeepEqual) rather than coercive: a numeric string never
// equals a number.
func (b *binding) changed(cur any) bool {
	return !reflect.DeepEqual(cur, b.old)
}

// setReflect assigns v to field, converting between numeric kinds so a
// float64 coming out of a slider can land in an int field.
func setReflect(field reflect.Value, property string, v any) error {
	if v == nil {
		return &BindError{Property: property, Reason: "cannot write nil"}
	}
	rv := reflect.ValueOf(v)
	ft := field.Type()
	switch {
	case rv.Type().AssignableTo(ft):
		field.Set(rv)
	case numericKind(rv.Kind()) && numericKind(ft.Kind()):
		field.Set(rv.Convert(ft))
	default:
		return &BindError{Property: property, Reason: "value type " + rv.Type().String() + " does not fit field type " + ft.String()}
	}
	return nil
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
