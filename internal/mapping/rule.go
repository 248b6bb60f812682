package mapping

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"queryable-projector/internal/analyze"
)

// Rule overrides field matching for one ordered type pair.
type Rule struct {
	// Fields maps destination field names to source field names.
	Fields map[string]string
	// ExplicitOnly leaves every destination field without an entry in Fields untouched,
	// even when a source field of the same name exists.
	ExplicitOnly bool
}

// NewRule creates a Rule from destination: source pairs.
func NewRule(fields map[string]string, explicitOnly bool) Rule {
	return Rule{Fields: maps.Clone(fields), ExplicitOnly: explicitOnly}
}

// SourceFor returns the source field name feeding the destination field dst.
// ok is false when the destination field must be left untouched.
func (r Rule) SourceFor(dst string) (src string, ok bool) {
	if src, found := r.Fields[dst]; found {
		return src, true
	}

	if r.ExplicitOnly {
		return "", false
	}

	return dst, true
}

// TypePair is an ordered (source, destination) type pair.
type TypePair struct {
	Source reflect.Type
	Target reflect.Type
}

// PairOf creates a TypePair with pointer indirections removed.
func PairOf(src, dst reflect.Type) TypePair {
	return TypePair{Source: analyze.Indirect(src), Target: analyze.Indirect(dst)}
}

// String returns "Source->Target".
func (p TypePair) String() string {
	return analyze.IDOf(p.Source).String() + "->" + analyze.IDOf(p.Target).String()
}

// Registry holds at most one Rule per ordered type pair.
//
// Build the registry before compiling projections and do not modify it afterwards;
// compilers only read from it. A nil *Registry resolves nothing.
type Registry struct {
	mu    sync.RWMutex
	rules map[TypePair]Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[TypePair]Rule)}
}

// Register stores rule for the (src, dst) pair, replacing any previous rule for it.
func (r *Registry) Register(src, dst reflect.Type, rule Rule) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rules == nil {
		r.rules = make(map[TypePair]Rule)
	}

	rule.Fields = maps.Clone(rule.Fields)
	r.rules[PairOf(src, dst)] = rule

	return r
}

// Register stores rule for the (S, D) pair of r.
func Register[S, D any](r *Registry, rule Rule) *Registry {
	return r.Register(reflect.TypeFor[S](), reflect.TypeFor[D](), rule)
}

// Resolve returns the rule registered for (src, dst).
func (r *Registry) Resolve(src, dst reflect.Type) (Rule, bool) {
	if r == nil {
		return Rule{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[PairOf(src, dst)]

	return rule, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rules)
}

// Pairs returns the registered type pairs sorted by their string form.
func (r *Registry) Pairs() []TypePair {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	pairs := slices.Collect(maps.Keys(r.rules))
	r.mu.RUnlock()

	slices.SortFunc(pairs, func(a, b TypePair) int {
		return strings.Compare(a.String(), b.String())
	})

	return pairs
}

// Fingerprint returns a stable textual form of all rules.
// Registries holding the same rules have the same fingerprint.
func (r *Registry) Fingerprint() string {
	if r == nil {
		return ""
	}

	var sb strings.Builder

	for _, pair := range r.Pairs() {
		rule, _ := r.Resolve(pair.Source, pair.Target)

		sb.WriteString(pair.String())
		sb.WriteString("{explicit=")
		sb.WriteString(strconv.FormatBool(rule.ExplicitOnly))

		for _, dst := range slices.Sorted(maps.Keys(rule.Fields)) {
			fmt.Fprintf(&sb, ",%s=%s", dst, rule.Fields[dst])
		}

		sb.WriteString("};")
	}

	return sb.String()
}
