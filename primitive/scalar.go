package primitive

import "reflect"

// IsScalar reports whether values of rtype are copied as a whole instead of being projected.
//
// Scalars are the kinds reported by FromReflectType, one optional pointer layer around them,
// and slices, arrays or maps holding only scalars.
func IsScalar(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	if FromReflectType(rtype) != 0 {
		return true
	}

	switch rtype.Kind() {
	case reflect.Ptr:
		return FromReflectType(rtype.Elem()) != 0
	case reflect.Slice, reflect.Array:
		return IsScalar(rtype.Elem())
	case reflect.Map:
		return IsScalar(rtype.Key()) && IsScalar(rtype.Elem())
	case reflect.Interface, reflect.Func, reflect.Chan:
		// opaque handles, nothing to project into
		return true
	default:
		return false
	}
}

// Optional returns the wrapped type and true when rtype is a pointer to a scalar kind.
func Optional(rtype reflect.Type) (reflect.Type, bool) {
	if rtype == nil || rtype.Kind() != reflect.Ptr {
		return rtype, false
	}

	if FromReflectType(rtype.Elem()) == 0 {
		return rtype, false
	}

	return rtype.Elem(), true
}
