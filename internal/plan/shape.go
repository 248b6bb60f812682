package plan

import (
	"reflect"

	"queryable-projector/primitive"
)

//go:generate go tool stringer -type=Shape -linecomment -output=shape_string.go

// Shape is the cardinality class of a field type.
type Shape int

const (
	ShapeInvalid     Shape = iota // invalid
	ShapeScalar                   // scalar
	ShapeSingle                   // single
	ShapeSequence                 // sequence
	ShapeUnsupported              // unsupported

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// ShapeOf classifies t and returns the type a relation projects:
//   - scalar types are returned as is
//   - a struct or pointer to struct is single, the struct type is returned
//   - a slice or array of structs or pointers to structs is a sequence,
//     the declared element type is returned
//
// Maps, channels of structs and double pointers are unsupported.
func ShapeOf(t reflect.Type) (Shape, reflect.Type) {
	if t == nil {
		return ShapeInvalid, nil
	}

	if primitive.IsScalar(t) {
		return ShapeScalar, t
	}

	switch t.Kind() {
	case reflect.Struct:
		return ShapeSingle, t

	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return ShapeSingle, t.Elem()
		}

	case reflect.Slice, reflect.Array:
		elem := t.Elem()
		if isStructOrPointer(elem) {
			return ShapeSequence, elem
		}
	}

	return ShapeUnsupported, t
}

// IsSequence reports whether t is many-valued: a slice or an array of any element type.
// Byte slices and byte arrays are scalar values.
func IsSequence(t reflect.Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

func isStructOrPointer(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}
