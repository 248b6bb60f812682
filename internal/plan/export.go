package plan

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"

	"queryable-projector/internal/analyze"
)

// ExportedPlan is the portable form of a TypePlan: a tagged variant tree
// with type and field names only.
type ExportedPlan struct {
	Source      string            `json:"source"`
	Target      string            `json:"target"`
	Includes    []string          `json:"includes,omitempty"`
	Bindings    []ExportedBinding `json:"bindings"`
	Diagnostics []string          `json:"diagnostics,omitempty"`
}

// ExportedBinding is the portable form of a Binding.
type ExportedBinding struct {
	Kind       string        `json:"kind"`
	Target     string        `json:"target"`
	Source     string        `json:"source"`
	Conversion string        `json:"conversion,omitempty"`
	Caster     string        `json:"caster,omitempty"`
	Plan       *ExportedPlan `json:"plan,omitempty"`
}

// Export converts p into its portable form.
func Export(p *TypePlan) *ExportedPlan {
	if p == nil {
		return nil
	}

	ep := &ExportedPlan{
		Source:   analyze.IDOf(p.Source).String(),
		Target:   analyze.IDOf(p.Target).String(),
		Includes: p.Includes,
		Bindings: make([]ExportedBinding, 0, len(p.Bindings)),
	}

	for _, b := range p.Bindings {
		eb := ExportedBinding{
			Kind:   b.Kind.String(),
			Target: b.Target.Name,
			Source: b.Source.Name,
			Plan:   Export(b.Nested),
		}

		if b.Kind == BindingScalar {
			eb.Conversion = b.Conversion.String()
		}

		if b.Caster != nil {
			eb.Caster = b.Caster.String()
		}

		ep.Bindings = append(ep.Bindings, eb)
	}

	for _, d := range p.Diagnostics.All() {
		ep.Diagnostics = append(ep.Diagnostics, d.String())
	}

	return ep
}

// MarshalJSON encodes the exported form of p.
func (p *TypePlan) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(Export(p))
}

// MarshalIndentJSON encodes the exported form of p with two space indentation.
func MarshalIndentJSON(p *TypePlan) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(Export(p), "", "  ")
}

// String renders p as an indented tree:
//
//	store.Order -> warehouse.OrderDto
//	  ID <- ID (assign)
//	  OrderDetails <- OrderDetails [collection]
//	    store.OrderDetail -> warehouse.OrderDetailDto
//	      ID <- ID (assign)
func (p *TypePlan) String() string {
	var sb strings.Builder

	writeTree(&sb, p, 0)

	return sb.String()
}

func writeTree(sb *strings.Builder, p *TypePlan, depth int) {
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(sb, "%s%s -> %s\n", indent, p.Source, p.Target)

	for _, b := range p.Bindings {
		switch b.Kind {
		case BindingScalar:
			conv := b.Conversion.String()
			if b.Caster != nil {
				conv += " " + b.Caster.String()
			}

			fmt.Fprintf(sb, "%s  %s <- %s (%s)\n", indent, b.Target.Name, b.Source.Name, conv)
		default:
			fmt.Fprintf(sb, "%s  %s <- %s [%s]\n", indent, b.Target.Name, b.Source.Name, b.Kind)
			writeTree(sb, b.Nested, depth+2)
		}
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a go-spew dump of the exported form of p.
func Dump(p *TypePlan) string {
	return dumpConfig.Sdump(Export(p))
}
