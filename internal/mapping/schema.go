package mapping

import (
	"errors"
	"fmt"
	"maps"

	"queryable-projector/internal/analyze"
)

var (
	ErrTypeNotFound = errors.New("type not found")
	ErrInvalidRule  = errors.New("invalid mapping rule")
)

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// TypeMappings is a list of type pair rules.
	TypeMappings []TypeMapping `yaml:"mappings"`
}

// TypeMapping defines the rule for one source type to one target type.
type TypeMapping struct {
	// Source type identifier (e.g., "store.Order" or full path).
	Source string `yaml:"source"`

	// Target type identifier (e.g., "warehouse.OrderDto" or full path).
	Target string `yaml:"target"`

	// ExplicitOnly binds only the target fields listed in Fields.
	ExplicitOnly bool `yaml:"explicit_only,omitempty"`

	// Fields maps target field names to source field names.
	// Example: { "CustomerID": "ID" }
	Fields map[string]string `yaml:"fields,omitempty"`
}

// String returns "Source->Target".
func (tm *TypeMapping) String() string {
	return tm.Source + "->" + tm.Target
}

// Rule returns the Rule described by the type mapping.
func (tm *TypeMapping) Rule() Rule {
	return NewRule(tm.Fields, tm.ExplicitOnly)
}

// validateShape checks the parts of a type mapping that do not need type information.
func (tm *TypeMapping) validateShape() error {
	if tm.Source == "" || tm.Target == "" {
		return fmt.Errorf("%w: mapping %q needs both source and target", ErrInvalidRule, tm.String())
	}

	for dst, src := range tm.Fields {
		if dst == "" || src == "" {
			return fmt.Errorf("%w: mapping %q has an empty field name (%q: %q)", ErrInvalidRule, tm.String(), dst, src)
		}
	}

	return nil
}

// Build resolves all type mappings against types and returns the resulting Registry.
// Later mappings for the same type pair replace earlier ones.
func (mf *MappingFile) Build(types *TypeSet) (*Registry, error) {
	reg := NewRegistry()

	for i := range mf.TypeMappings {
		tm := &mf.TypeMappings[i]

		if err := tm.validateShape(); err != nil {
			return nil, err
		}

		src, ok := types.ResolveTypeID(tm.Source)
		if !ok {
			return nil, fmt.Errorf("source type %q: %w", tm.Source, ErrTypeNotFound)
		}

		dst, ok := types.ResolveTypeID(tm.Target)
		if !ok {
			return nil, fmt.Errorf("target type %q: %w", tm.Target, ErrTypeNotFound)
		}

		reg.Register(src, dst, tm.Rule())
	}

	return reg, nil
}

// FromRegistry exports the rules of reg into a MappingFile using full type names.
func FromRegistry(reg *Registry) *MappingFile {
	mf := &MappingFile{Version: "1", TypeMappings: []TypeMapping{}}

	for _, pair := range reg.Pairs() {
		rule, _ := reg.Resolve(pair.Source, pair.Target)

		mf.TypeMappings = append(mf.TypeMappings, TypeMapping{
			Source:       analyze.IDOf(pair.Source).String(),
			Target:       analyze.IDOf(pair.Target).String(),
			ExplicitOnly: rule.ExplicitOnly,
			Fields:       maps.Clone(rule.Fields),
		})
	}

	return mf
}
