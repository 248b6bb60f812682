package node

import "reflect"

// deref follows pointers down to a struct value. ok is false on a nil pointer.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}

		v = v.Elem()
	}

	return v, v.IsValid()
}

// coerce returns v as a value of type t, converting when v is not assignable.
func coerce(v reflect.Value, t reflect.Type) reflect.Value {
	if v.Type().AssignableTo(t) {
		return v
	}

	return v.Convert(t)
}

// detach copies slices and maps so that a projection never aliases source containers.
func detach(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}

		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)

		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}

		out := reflect.MakeMapWithSize(v.Type(), v.Len())

		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}

		return out

	default:
		return v
	}
}
