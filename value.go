package tweak

import (
	"fmt"
	"reflect"
	"strconv"
)

// Coercions between the types widgets emit (float64, bool, string) and the
// types bound properties carry. Widgets accept any numeric kind through
// SetValue so an int field can feed a slider.

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && numericKind(rv.Kind()) {
		return rv.Convert(reflect.TypeOf(float64(0))).Float(), true
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// formatValue renders a value for display. Floats drop trailing zeros so a
// slider at 3 reads "3", not "3.000000".
func formatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}
