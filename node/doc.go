// Package node applies compiled projection plans to in-memory values.
//
// Build turns a plan.TypePlan into a tree of reflection closures once; the
// resulting Projector then builds fresh destination values from source values
// without consulting the plan again.
package node
