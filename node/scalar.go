package node

import (
	"fmt"
	"reflect"

	"queryable-projector/internal/plan"
)

// genScalar copies a scalar source value with the conversion chosen by the compiler.
// Pointers are never shared: wrap and rewrap allocate, deref and rewrap leave nil as zero.
func genScalar(b plan.Binding) valueFunc {
	dstType := b.Target.Type

	switch b.Conversion {
	case plan.ConversionAssign:
		return func(src reflect.Value) (reflect.Value, bool, error) {
			return detach(src), true, nil
		}

	case plan.ConversionConvert:
		return func(src reflect.Value) (reflect.Value, bool, error) {
			return detach(src.Convert(dstType)), true, nil
		}

	case plan.ConversionWrap:
		elem := dstType.Elem()

		return func(src reflect.Value) (reflect.Value, bool, error) {
			ptr := reflect.New(elem)
			ptr.Elem().Set(detach(coerce(src, elem)))

			return ptr, true, nil
		}

	case plan.ConversionDeref:
		return func(src reflect.Value) (reflect.Value, bool, error) {
			if src.IsNil() {
				return reflect.Value{}, false, nil
			}

			return detach(coerce(src.Elem(), dstType)), true, nil
		}

	case plan.ConversionRewrap:
		elem := dstType.Elem()

		return func(src reflect.Value) (reflect.Value, bool, error) {
			if src.IsNil() {
				return reflect.Value{}, false, nil
			}

			ptr := reflect.New(elem)
			ptr.Elem().Set(detach(coerce(src.Elem(), elem)))

			return ptr, true, nil
		}

	case plan.ConversionFunc:
		return genCaster(b.Caster, dstType)

	default:
		return nil
	}
}

func genCaster(caster *plan.Caster, dstType reflect.Type) valueFunc {
	if caster == nil {
		return nil
	}

	return func(src reflect.Value) (reflect.Value, bool, error) {
		out, ok, err := caster.Call(src)
		if err != nil {
			return reflect.Value{}, false, fmt.Errorf("failed to call %s: %w", caster, err)
		}

		if !ok {
			return reflect.Value{}, false, nil
		}

		return coerce(out, dstType), true, nil
	}
}
