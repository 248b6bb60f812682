package analyze

import (
	"reflect"

	"queryable-projector/internal/common"
)

// TagKey is the struct tag consulted by the Reader.
//
//	projector:"-"        field is never described
//	projector:"readonly" field is not described for destinations
const TagKey = "projector"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "queryable-projector/store"
	Name    string // e.g., "Order"
}

// IDOf returns the TypeID of a named type after removing pointer indirections.
// Unnamed types get their Go syntax as the name.
func IDOf(t reflect.Type) TypeID {
	if t == nil {
		return TypeID{}
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() == "" {
		return TypeID{Name: t.String()}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldClass tells how a field takes part in a projection.
type FieldClass int

const (
	FieldClassUnknown    FieldClass = iota
	FieldClassScalar                // copied by value
	FieldClassRelational            // projected recursively when included
)

// String returns a human-readable representation of the FieldClass.
func (c FieldClass) String() string {
	switch c {
	case FieldClassScalar:
		return "scalar"
	case FieldClassRelational:
		return "relational"
	default:
		return common.UnknownStr
	}
}

// FieldInfo describes a struct field usable for projection.
type FieldInfo struct {
	Name     string            // Go field name
	Type     reflect.Type      // Declared field type
	Index    []int             // Index path for reflect.Value.FieldByIndex, promoted fields have more than one entry
	Class    FieldClass        // Scalar or relational
	Tag      reflect.StructTag // Raw struct tag
	ReadOnly bool              // Tagged projector:"readonly"
}

// IsScalar returns true if the field is copied by value.
func (f *FieldInfo) IsScalar() bool {
	return f.Class == FieldClassScalar
}

// IsRelational returns true if the field references other projected types.
func (f *FieldInfo) IsRelational() bool {
	return f.Class == FieldClassRelational
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		// Parse first part before comma
		for i := range len(tag) {
			if tag[i] == ',' {
				return tag[:i]
			}
		}

		return tag
	}

	return f.Name
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// Fields is an ordered field set of one type.
type Fields []FieldInfo

// ByName returns the field with the given name.
func (fs Fields) ByName(name string) (FieldInfo, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}

	return FieldInfo{}, false
}

// Names returns field names in declaration order.
func (fs Fields) Names() []string {
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name)
	}

	return names
}
