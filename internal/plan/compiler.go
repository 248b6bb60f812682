package plan

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/diagnostic"
	"queryable-projector/internal/include"
	"queryable-projector/internal/mapping"
	"queryable-projector/internal/match"
	"queryable-projector/options"
	"queryable-projector/primitive"
)

var ErrNilType = errors.New("source and target types are required")

// Diagnostic codes emitted by the compiler.
const (
	CodeUnmappedTarget      = "unmapped_target"
	CodeExplicitOnlySkip    = "explicit_only_skip"
	CodeRuleSourceMissing   = "rule_source_missing"
	CodeScalarTypeMismatch  = "scalar_type_mismatch"
	CodeUnknownInclude      = "unknown_include"
	CodeUnsupportedRelation = "unsupported_relation"
	CodeRelationNotIncluded = "relation_not_included"
	CodeRelationOverwritten = "relation_overwritten"
)

// Compiler builds TypePlans. A Compiler is safe for concurrent use.
type Compiler struct {
	rules      *mapping.Registry
	reader     *analyze.Reader
	cache      *Cache
	logger     Logger
	strict     bool
	categories options.CategoryEnum
	casters    map[casterKey]*Caster
	settings   string
}

// NewCompiler creates a Compiler.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		reader:     analyze.DefaultReader(),
		logger:     nopLogger{},
		categories: options.CategoryDefault,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.settings = c.settingsKey()

	return c, nil
}

// Rules returns the mapping rules of the compiler.
func (c *Compiler) Rules() *mapping.Registry {
	return c.rules
}

// Compile builds the plan projecting src into dst, populating only the relations named by includes.
//
// The only compilation error is a *NavigationCardinalityMismatchError, plus the
// *diagnostic.Diagnostics of a strict compiler. Everything else that cannot be bound is
// skipped and reported in TypePlan.Diagnostics.
func (c *Compiler) Compile(src, dst reflect.Type, includes []string) (*TypePlan, error) {
	start := time.Now()

	src, dst = analyze.Indirect(src), analyze.Indirect(dst)
	if src == nil || dst == nil {
		return nil, ErrNilType
	}

	includes = include.Normalize(includes)
	run := &compilation{c: c, diags: &diagnostic.Diagnostics{}}

	p, err := run.compile(src, dst, includes, "")
	if err != nil {
		c.logger.Debug("projection compilation failed", "source", src.String(), "target", dst.String(), "error", err)
		return nil, err
	}

	p.Diagnostics = run.diags

	for _, d := range run.diags.All() {
		c.logger.Debug("projection field skipped",
			"code", d.Code, "severity", d.Severity.String(), "pair", d.TypePair, "field", d.FieldPath, "message", d.Message)
	}

	if c.strict {
		if err := run.diags.Promote().Err(); err != nil {
			c.logger.Warn("strict projection compilation failed", "source", src.String(), "target", dst.String(), "errors", run.diags.Len())
			return nil, fmt.Errorf("compile %s: %w", pairName(src, dst), err)
		}
	}

	c.logger.Debug("projection compiled",
		"source", src.String(),
		"target", dst.String(),
		"includes", includes,
		"bindings", len(p.Bindings),
		"depth", p.Depth(),
		"duration", time.Since(start),
	)

	return p, nil
}

// pairing is a relational source field parked until an include path names it.
type pairing struct {
	source analyze.FieldInfo
	target analyze.FieldInfo
}

// compilation holds the state of one Compile call.
type compilation struct {
	c     *Compiler
	diags *diagnostic.Diagnostics
}

func (r *compilation) compile(src, dst reflect.Type, includes []string, path string) (*TypePlan, error) {
	p := &TypePlan{Source: src, Target: dst, Includes: includes}
	pair := pairName(src, dst)

	dstFields := r.c.reader.Describe(dst, true)
	srcFields := r.c.reader.Describe(src, false)
	rule, hasRule := r.c.rules.Resolve(src, dst)

	relations := make(map[string]pairing)

	var relationOrder []string

	for _, d := range dstFields {
		fieldPath := joinPath(path, d.Name)

		srcName, ok := rule.SourceFor(d.Name)
		if !ok {
			r.diags.AddInfo(CodeExplicitOnlySkip, "no entry in explicit-only rule, left at zero value", pair, fieldPath)
			continue
		}

		s, found := srcFields.ByName(srcName)
		if !found {
			suggestions := match.Suggest(srcName, srcFields.Names(), match.DefaultLimit)

			if _, mapped := rule.Fields[d.Name]; hasRule && mapped {
				r.diags.AddWarning(CodeRuleSourceMissing,
					fmt.Sprintf("rule source field %q does not exist", srcName), pair, fieldPath, suggestions...)
			} else {
				r.diags.AddWarning(CodeUnmappedTarget, "no source field with the same name", pair, fieldPath, suggestions...)
			}

			continue
		}

		if s.IsScalar() {
			b, ok := r.scalarBinding(s, d)
			if !ok {
				r.diags.AddWarning(CodeScalarTypeMismatch,
					fmt.Sprintf("cannot convert %s to %s", analyze.TypeString(s.Type), analyze.TypeString(d.Type)), pair, fieldPath)

				continue
			}

			p.Bindings = append(p.Bindings, b)

			continue
		}

		if prev, seen := relations[s.Name]; seen {
			r.diags.AddInfo(CodeRelationOverwritten,
				fmt.Sprintf("relation %s is bound to %s instead", s.Name, d.Name), pair, joinPath(path, prev.target.Name))
		} else {
			relationOrder = append(relationOrder, s.Name)
		}

		relations[s.Name] = pairing{source: s, target: d}
	}

	included := make(map[string]bool)

	for _, g := range include.GroupPaths(includes) {
		pr, ok := relations[g.Head]
		if !ok {
			r.diags.AddWarning(CodeUnknownInclude,
				fmt.Sprintf("include segment %q names no bound relation of %s", g.Head, src),
				pair, joinPath(path, g.Head), match.Suggest(g.Head, relationOrder, match.DefaultLimit)...)

			continue
		}

		included[g.Head] = true

		b, ok, err := r.relationBinding(p, pr, g.Suffixes, joinPath(path, pr.target.Name))
		if err != nil {
			return nil, err
		}

		if ok {
			p.Bindings = append(p.Bindings, b)
		}
	}

	for _, name := range relationOrder {
		if !included[name] {
			r.diags.AddInfo(CodeRelationNotIncluded,
				fmt.Sprintf("relation %s is not included, left at zero value", name),
				pair, joinPath(path, relations[name].target.Name))
		}
	}

	sortBindings(p.Bindings, dstFields)

	return p, nil
}

func (r *compilation) relationBinding(owner *TypePlan, pr pairing, suffixes []string, fieldPath string) (Binding, bool, error) {
	srcShape, srcElem := ShapeOf(pr.source.Type)
	dstShape, dstElem := ShapeOf(pr.target.Type)

	srcMany, dstMany := IsSequence(pr.source.Type), IsSequence(pr.target.Type)
	if srcMany != dstMany {
		return Binding{}, false, &NavigationCardinalityMismatchError{
			Field:    pr.target.Name,
			Path:     fieldPath,
			Source:   owner.Source,
			Target:   owner.Target,
			Expected: cardinality(dstShape, dstMany),
			Actual:   cardinality(srcShape, srcMany),
		}
	}

	if !isRelation(srcShape) || !isRelation(dstShape) {
		r.diags.AddWarning(CodeUnsupportedRelation,
			fmt.Sprintf("cannot project %s (%s) into %s (%s)",
				analyze.TypeString(pr.source.Type), srcShape, analyze.TypeString(pr.target.Type), dstShape),
			pairName(owner.Source, owner.Target), fieldPath)

		return Binding{}, false, nil
	}

	if err := checkArrayLength(owner, pr, fieldPath); err != nil {
		return Binding{}, false, err
	}

	nested, err := r.compile(analyze.Indirect(srcElem), analyze.Indirect(dstElem), suffixes, fieldPath)
	if err != nil {
		return Binding{}, false, err
	}

	kind := BindingSingle
	if dstShape == ShapeSequence {
		kind = BindingCollection
	}

	return Binding{Kind: kind, Target: pr.target, Source: pr.source, Nested: nested}, true, nil
}

func (r *compilation) scalarBinding(src, dst analyze.FieldInfo) (Binding, bool) {
	conv, caster, ok := r.c.conversion(src.Type, dst.Type)
	if !ok {
		return Binding{}, false
	}

	return Binding{Kind: BindingScalar, Target: dst, Source: src, Conversion: conv, Caster: caster}, true
}

// conversion picks how a st value becomes a dt value.
// Pointers to scalars are always copied, never shared between source and destination.
func (c *Compiler) conversion(st, dt reflect.Type) (Conversion, *Caster, bool) {
	if caster, ok := c.caster(st, dt); ok {
		return ConversionFunc, caster, true
	}

	srcElem, srcPtr := primitive.Optional(st)
	dstElem, dstPtr := primitive.Optional(dt)

	switch {
	case srcPtr && dstPtr && c.valueConvertible(srcElem, dstElem):
		return ConversionRewrap, nil, true
	case st.AssignableTo(dt):
		return ConversionAssign, nil, true
	case c.convertible(st, dt):
		return ConversionConvert, nil, true
	case !srcPtr && dstPtr && c.valueConvertible(st, dstElem):
		return ConversionWrap, nil, true
	case srcPtr && !dstPtr && c.valueConvertible(srcElem, dt):
		return ConversionDeref, nil, true
	}

	return 0, nil, false
}

func (c *Compiler) caster(st, dt reflect.Type) (*Caster, bool) {
	if !c.categories.Has(options.CategoryFunc) {
		return nil, false
	}

	caster, ok := c.casters[casterKey{src: st, dst: dt}]

	return caster, ok
}

func (c *Compiler) valueConvertible(st, dt reflect.Type) bool {
	return st.AssignableTo(dt) || c.convertible(st, dt)
}

func (c *Compiler) convertible(st, dt reflect.Type) bool {
	category := primitive.Category(st, dt)

	return category != options.CategoryNone && c.categories.Has(category)
}

func isRelation(s Shape) bool {
	return s == ShapeSingle || s == ShapeSequence
}

// cardinality reports many-valued types as sequences whatever their element type.
func cardinality(s Shape, many bool) Shape {
	if many {
		return ShapeSequence
	}

	return s
}

// checkArrayLength rejects an array destination that cannot hold every source element.
// Slice sources are checked when projected.
func checkArrayLength(owner *TypePlan, pr pairing, fieldPath string) error {
	st, dt := pr.source.Type, pr.target.Type
	if dt.Kind() != reflect.Array || st.Kind() != reflect.Array || st.Len() <= dt.Len() {
		return nil
	}

	return fmt.Errorf("%w: field %q of %s holds %d elements, source field of %s has %d",
		ErrArrayLength, fieldPath, owner.Target, dt.Len(), owner.Source, st.Len())
}

// sortBindings orders bindings by destination field declaration order.
func sortBindings(bindings []Binding, fields analyze.Fields) {
	pos := make(map[string]int, len(fields))
	for i, f := range fields {
		pos[f.Name] = i
	}

	slices.SortStableFunc(bindings, func(a, b Binding) int {
		return pos[a.Target.Name] - pos[b.Target.Name]
	})
}

func pairName(src, dst reflect.Type) string {
	return src.String() + "->" + dst.String()
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return include.Join(path, name)
}
