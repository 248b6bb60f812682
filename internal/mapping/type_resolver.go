package mapping

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/common"
)

// TypeSet is a name lookup for the types a mapping file may reference.
type TypeSet struct {
	types map[analyze.TypeID]reflect.Type
}

// NewTypeSet creates a TypeSet from the given types. Pointer types are dereferenced.
func NewTypeSet(types ...reflect.Type) *TypeSet {
	ts := &TypeSet{types: make(map[analyze.TypeID]reflect.Type, len(types))}
	for _, t := range types {
		ts.Add(t)
	}

	return ts
}

// Add adds t to the set.
func (s *TypeSet) Add(t reflect.Type) {
	t = analyze.Indirect(t)
	if t == nil {
		return
	}

	if s.types == nil {
		s.types = make(map[analyze.TypeID]reflect.Type)
	}

	s.types[analyze.IDOf(t)] = t
}

// IDs returns the ids of all types in the set, sorted.
func (s *TypeSet) IDs() []analyze.TypeID {
	if s == nil {
		return nil
	}

	ids := slices.Collect(maps.Keys(s.types))
	slices.SortFunc(ids, func(a, b analyze.TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	return ids
}

// ResolveTypeID resolves a type ID string like:
// - "store.Order" (short)
// - "queryable-projector/store.Order" (full)
// - "Order" (name only).
func (s *TypeSet) ResolveTypeID(typeIDStr string) (reflect.Type, bool) {
	if s == nil || typeIDStr == "" {
		return nil, false
	}

	// Name-only: best-effort match by type name, first in sorted order.
	if !strings.Contains(typeIDStr, ".") {
		for _, id := range s.IDs() {
			if id.Name == typeIDStr {
				return s.types[id], true
			}
		}

		return nil, false
	}

	lastDot := strings.LastIndex(typeIDStr, ".")
	pkgStr := typeIDStr[:lastDot]

	name := typeIDStr[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil, false
	}

	// 1) exact match (for fully qualified import path)
	if t, ok := s.types[analyze.TypeID{PkgPath: pkgStr, Name: name}]; ok {
		return t, true
	}

	// 2) suffix match (for short forms like "store.Order" vs "queryable-projector/store.Order")
	for _, id := range s.IDs() {
		if id.Name != name {
			continue
		}

		if common.PkgAlias(id.PkgPath) == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return s.types[id], true
		}
	}

	return nil, false
}
