package analyze

import (
	"reflect"
	"strconv"
)

// TypeString returns a short human-readable name of t.
// Named types are printed without their package path, e.g. "[]*OrderDetail".
func TypeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeString(t.Elem())
	case reflect.Slice:
		return "[]" + TypeString(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeString(t.Elem())
	case reflect.Map:
		return "map[" + TypeString(t.Key()) + "]" + TypeString(t.Elem())
	default:
		if t.Name() != "" {
			return t.Name()
		}

		return t.String()
	}
}
