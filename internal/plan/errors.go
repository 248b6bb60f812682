package plan

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNavigationCardinalityMismatch is matched by every *NavigationCardinalityMismatchError.
var ErrNavigationCardinalityMismatch = errors.New("navigation cardinality mismatch")

// ErrArrayLength reports a sequence with more elements than its destination array holds.
var ErrArrayLength = errors.New("sequence does not fit the destination array")

// NavigationCardinalityMismatchError reports an included relation that is a sequence on
// one side and not on the other.
type NavigationCardinalityMismatchError struct {
	// Field is the destination field name.
	Field string
	// Path is the dotted destination path from the root plan.
	Path string
	// Source and Target are the struct types owning the paired fields.
	Source, Target reflect.Type
	// Expected is the destination shape, Actual the source shape.
	Expected, Actual Shape
}

func (e *NavigationCardinalityMismatchError) Error() string {
	return fmt.Sprintf(
		"%s: field %q of %s is %s but source field of %s is %s",
		ErrNavigationCardinalityMismatch,
		e.Path,
		e.Target,
		e.Expected,
		e.Source,
		e.Actual,
	)
}

func (e *NavigationCardinalityMismatchError) Unwrap() error {
	return ErrNavigationCardinalityMismatch
}
