// Package options holds the scalar conversion policy shared by the compiler and its callers.
package options

// CategoryEnum is a bit set of scalar conversion categories a projection may apply
// when a source scalar is not assignable to its destination.
type CategoryEnum int

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float widening without precision loss
	CategoryUnsafeNumber                          // int, uint, float narrowing or sign change, may lose precision
	CategoryNamed                                 // named type <-> its underlying type or another named type of it (OrderStatus <-> string)
	CategoryFunc                                  // registered converter functions

	CategoryAll     CategoryEnum = (1 << iota) - 1                                   // all categories combined
	CategoryNone    CategoryEnum = 0                                                 // no categories selected, assignable types only
	CategoryDefault CategoryEnum = CategorySafeNumber | CategoryNamed | CategoryFunc // used when nothing is configured
)

// Has reports whether all categories of other are present in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}
