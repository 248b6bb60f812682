// Package plan compiles projection plans.
//
// A TypePlan describes how to build one destination struct from one source struct:
// an ordered list of bindings, each either a scalar copy or a nested relation plan.
// Relations are only bound when an include path names them, everything else is left
// at its zero value.
//
// Compilation pipeline:
//  1. Describe destination (writable) and source fields
//  2. Resolve the mapping rule of the type pair
//  3. Bind scalars right away, park relational pairings by source field name
//  4. Group include paths by head segment
//  5. For every head naming a parked pairing: check cardinality, recurse
//  6. Emit diagnostics for everything skipped
//
// Plans are immutable once compiled and may be shared between goroutines.
package plan
