package plan

import (
	"reflect"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/diagnostic"
)

//go:generate go tool stringer -type=BindingKind,Conversion -linecomment -output=types_string.go

// TypePlan is the compiled description of how to build a Target value from a Source value.
type TypePlan struct {
	// Source struct type being projected from.
	Source reflect.Type
	// Target struct type being built.
	Target reflect.Type
	// Includes are the include paths this level was compiled with, relative to Source.
	Includes []string
	// Bindings in destination field declaration order.
	Bindings []Binding
	// Diagnostics of the whole compilation. Only set on the root plan.
	Diagnostics *diagnostic.Diagnostics
}

// BindingKind tells how a binding populates its destination field.
type BindingKind int

const (
	BindingScalar     BindingKind = iota // scalar
	BindingSingle                        // single
	BindingCollection                    // collection
)

// Conversion is the way a scalar source value becomes the destination value.
type Conversion int

const (
	ConversionAssign  Conversion = iota // assign
	ConversionConvert                   // convert
	ConversionWrap                      // wrap
	ConversionDeref                     // deref
	ConversionRewrap                    // rewrap
	ConversionFunc                      // func
)

// Binding populates one destination field from one source field.
type Binding struct {
	Kind BindingKind
	// Target is the destination field written by the binding.
	Target analyze.FieldInfo
	// Source is the source field read by the binding.
	Source analyze.FieldInfo
	// Conversion of scalar bindings.
	Conversion Conversion
	// Caster of ConversionFunc bindings.
	Caster *Caster
	// Nested is the plan of a single relation, or the element plan of a collection.
	Nested *TypePlan
}

// Binding returns the binding writing the destination field name.
func (p *TypePlan) Binding(name string) (Binding, bool) {
	for _, b := range p.Bindings {
		if b.Target.Name == name {
			return b, true
		}
	}

	return Binding{}, false
}

// Depth returns the number of relation levels below p.
func (p *TypePlan) Depth() int {
	depth := 0

	for _, b := range p.Bindings {
		if b.Nested != nil {
			depth = max(depth, b.Nested.Depth()+1)
		}
	}

	return depth
}
