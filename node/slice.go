package node

import (
	"fmt"
	"reflect"

	"queryable-projector/internal/plan"
)

// genSequence projects a collection relation element by element.
//
// A nil or empty source yields an empty non-nil slice. Nil element pointers stay nil.
// A destination array fails with plan.ErrArrayLength when the source has more elements.
func genSequence(b plan.Binding) valueFunc {
	build := genStruct(b.Nested)
	dstType := b.Target.Type
	elemPointer := dstType.Elem().Kind() == reflect.Ptr
	isArray := dstType.Kind() == reflect.Array

	element := func(src reflect.Value) (reflect.Value, bool, error) {
		src, ok := deref(src)
		if !ok {
			return reflect.Value{}, false, nil
		}

		dst, err := build(src)
		if err != nil {
			return reflect.Value{}, false, err
		}

		if elemPointer {
			return dst.Addr(), true, nil
		}

		return dst, true, nil
	}

	return func(src reflect.Value) (reflect.Value, bool, error) {
		n := src.Len()

		var dst reflect.Value

		if isArray {
			if n > dstType.Len() {
				return reflect.Value{}, false, fmt.Errorf("%w: %d elements into %s", plan.ErrArrayLength, n, dstType)
			}

			dst = reflect.New(dstType).Elem()
		} else {
			dst = reflect.MakeSlice(dstType, n, n)
		}

		for i := range n {
			v, ok, err := element(src.Index(i))
			if err != nil {
				return reflect.Value{}, false, fmt.Errorf("element %d: %w", i, err)
			}

			if ok {
				dst.Index(i).Set(v)
			}
		}

		return dst, true, nil
	}
}
