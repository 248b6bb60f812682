// Package query models an already executed query: its element type, the relationships
// that were eagerly loaded with it, and its elements.
package query

import (
	"reflect"
	"slices"
)

// Source is a query whose elements were loaded together with the relationships
// named by IncludedPaths.
type Source interface {
	// ElementType is the type of the elements handed to Each.
	ElementType() reflect.Type
	// IncludedPaths are the dotted include paths recorded on the query.
	IncludedPaths() []string
	// Each calls fn for every element in order and stops at the first error.
	Each(fn func(any) error) error
}

// Slice is an in-memory Source over a slice. Builder methods return new values
// and never modify the receiver.
type Slice[T any] struct {
	items    []T
	includes []string
	filters  []func(*T) bool
}

var _ Source = Slice[struct{}]{}

// From creates a query over items.
func From[T any](items []T) Slice[T] {
	return Slice[T]{items: items}
}

// Include records include paths such as "OrderDetails.Supplier".
func (s Slice[T]) Include(paths ...string) Slice[T] {
	s.includes = slices.Concat(s.includes, paths)
	return s
}

// Where keeps only the elements matching pred.
func (s Slice[T]) Where(pred func(*T) bool) Slice[T] {
	if pred != nil {
		s.filters = append(slices.Clip(s.filters), pred)
	}

	return s
}

func (s Slice[T]) ElementType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s Slice[T]) IncludedPaths() []string {
	return slices.Clone(s.includes)
}

// Each hands out pointers into the underlying slice.
func (s Slice[T]) Each(fn func(any) error) error {
	for i := range s.items {
		if !s.match(&s.items[i]) {
			continue
		}

		if err := fn(&s.items[i]); err != nil {
			return err
		}
	}

	return nil
}

// Items returns the matching elements.
func (s Slice[T]) Items() []T {
	out := make([]T, 0, len(s.items))

	for i := range s.items {
		if s.match(&s.items[i]) {
			out = append(out, s.items[i])
		}
	}

	return out
}

// Len returns the number of matching elements.
func (s Slice[T]) Len() int {
	n := 0

	for i := range s.items {
		if s.match(&s.items[i]) {
			n++
		}
	}

	return n
}

func (s Slice[T]) match(item *T) bool {
	for _, keep := range s.filters {
		if !keep(item) {
			return false
		}
	}

	return true
}
