package node

import (
	"fmt"
	"reflect"

	"queryable-projector/internal/plan"
)

type fieldWriter struct {
	name  string
	src   []int
	dst   []int
	value valueFunc
}

// genStruct builds the destination struct of p field by field in binding order.
func genStruct(p *plan.TypePlan) structFunc {
	writers := make([]fieldWriter, 0, len(p.Bindings))

	for _, b := range p.Bindings {
		value := genValue(b)
		if value == nil {
			continue
		}

		writers = append(writers, fieldWriter{
			name:  b.Target.Name,
			src:   b.Source.Index,
			dst:   b.Target.Index,
			value: value,
		})
	}

	target := p.Target

	return func(src reflect.Value) (reflect.Value, error) {
		dst := reflect.New(target).Elem()

		for _, w := range writers {
			v, ok, err := w.value(src.FieldByIndex(w.src))
			if err != nil {
				return reflect.Value{}, fmt.Errorf("field %s: %w", w.name, err)
			}

			if ok {
				dst.FieldByIndex(w.dst).Set(v)
			}
		}

		return dst, nil
	}
}

// genSingle projects a single relation. A nil source pointer leaves the destination zero.
func genSingle(b plan.Binding) valueFunc {
	build := genStruct(b.Nested)
	toPointer := b.Target.Type.Kind() == reflect.Ptr

	return func(src reflect.Value) (reflect.Value, bool, error) {
		src, ok := deref(src)
		if !ok {
			return reflect.Value{}, false, nil
		}

		dst, err := build(src)
		if err != nil {
			return reflect.Value{}, false, err
		}

		if toPointer {
			return dst.Addr(), true, nil
		}

		return dst, true, nil
	}
}
