package node

import (
	"errors"
	"fmt"
	"reflect"

	"queryable-projector/internal/plan"
)

var ErrSourceType = errors.New("source value does not match the plan source type")

// valueFunc produces a destination field value from a source field value.
// ok is false when the destination field is left at its zero value.
type valueFunc func(src reflect.Value) (dst reflect.Value, ok bool, err error)

// structFunc builds a fresh addressable destination struct from a source struct value.
type structFunc func(src reflect.Value) (reflect.Value, error)

// Projector applies one compiled plan. It holds no mutable state and is safe for concurrent use.
type Projector struct {
	plan  *plan.TypePlan
	build structFunc
}

// Build compiles p into a Projector, or returns nil for a nil plan.
func Build(p *plan.TypePlan) *Projector {
	if p == nil {
		return nil
	}

	return &Projector{plan: p, build: genStruct(p)}
}

// Plan returns the plan the projector was built from.
func (pr *Projector) Plan() *plan.TypePlan {
	return pr.plan
}

// Project builds a new *Target from src, a Source value or a pointer to one.
// A nil src yields a nil result.
func (pr *Projector) Project(src any) (any, error) {
	if src == nil {
		return nil, nil
	}

	out, err := pr.ProjectValue(reflect.ValueOf(src))
	if err != nil || !out.IsValid() {
		return nil, err
	}

	return out.Interface(), nil
}

// ProjectValue is Project on reflect values. It returns a *Target value,
// or the zero Value when src is invalid or a nil pointer.
func (pr *Projector) ProjectValue(src reflect.Value) (reflect.Value, error) {
	for src.IsValid() && (src.Kind() == reflect.Ptr || src.Kind() == reflect.Interface) {
		if src.IsNil() {
			return reflect.Value{}, nil
		}

		src = src.Elem()
	}

	if !src.IsValid() {
		return reflect.Value{}, nil
	}

	if src.Type() != pr.plan.Source {
		return reflect.Value{}, fmt.Errorf("%w: got %s, want %s", ErrSourceType, src.Type(), pr.plan.Source)
	}

	dst, err := pr.build(src)
	if err != nil {
		return reflect.Value{}, err
	}

	return dst.Addr(), nil
}

// Dispatch picks the writer family of b by its kind and destination type.
func Dispatch(b plan.Binding) DispatcherEnum {
	switch b.Kind {
	case plan.BindingScalar:
		return DispatcherScalar

	case plan.BindingSingle:
		switch b.Target.Type.Kind() {
		case reflect.Struct:
			return DispatcherStruct
		case reflect.Ptr:
			return DispatcherPointer
		}

	case plan.BindingCollection:
		switch b.Target.Type.Kind() {
		case reflect.Slice:
			return DispatcherSlice
		case reflect.Array:
			return DispatcherArray
		}
	}

	return DispatcherUnknown
}

func genValue(b plan.Binding) valueFunc {
	switch Dispatch(b) {
	case DispatcherScalar:
		return genScalar(b)
	case DispatcherStruct, DispatcherPointer:
		return genSingle(b)
	case DispatcherSlice, DispatcherArray:
		return genSequence(b)
	default:
		return nil
	}
}
