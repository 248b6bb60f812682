package plan

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/mapping"
	"queryable-projector/options"
)

var ErrNilReader = errors.New("type reader cannot be nil")

// Option defines a functional option for configuring a Compiler.
type Option func(*Compiler) error

// WithRules sets the mapping rules consulted for every type pair.
// A nil registry means identity name matching everywhere.
func WithRules(rules *mapping.Registry) Option {
	return func(c *Compiler) error {
		c.rules = rules
		return nil
	}
}

// WithReader sets the type reader, e.g. to share its metadata cache.
func WithReader(reader *analyze.Reader) Option {
	return func(c *Compiler) error {
		if reader == nil {
			return ErrNilReader
		}

		c.reader = reader

		return nil
	}
}

// WithCache sets the plan cache used by CompileCached.
// A cache may be shared by compilers with different settings.
func WithCache(cache *Cache) Option {
	return func(c *Compiler) error {
		c.cache = cache
		return nil
	}
}

// WithLogger sets the logger for the Compiler.
//
// Debug level: every skipped field, ignored include path and cache hit
// Info level: nothing
// Warn level: strict compilation failures.
func WithLogger(logger Logger) Option {
	return func(c *Compiler) error {
		if logger == nil {
			logger = nopLogger{}
		}

		c.logger = logger

		return nil
	}
}

// WithStrict turns warning diagnostics into a compilation error.
// Intentional skips (explicit-only rules, relations left out of the include set) stay informational.
func WithStrict(strict bool) Option {
	return func(c *Compiler) error {
		c.strict = strict
		return nil
	}
}

// WithConversions sets the scalar conversion categories a plan may apply.
// Defaults to options.CategoryDefault.
func WithConversions(categories options.CategoryEnum) Option {
	return func(c *Compiler) error {
		c.categories = categories
		return nil
	}
}

// WithCasters registers converter functions for scalar type pairs, see ParseCaster.
// A later caster replaces an earlier one for the same pair.
func WithCasters(fns ...any) Option {
	return func(c *Compiler) error {
		for i, fn := range fns {
			caster, err := ParseCaster(fn)
			if err != nil {
				return fmt.Errorf("caster #%d: %w", i, err)
			}

			if c.casters == nil {
				c.casters = make(map[casterKey]*Caster)
			}

			c.casters[casterKey{src: caster.Src, dst: caster.Dst}] = caster
		}

		return nil
	}
}

// settingsKey renders everything besides rules that changes compilation output.
func (c *Compiler) settingsKey() string {
	parts := []string{
		"strict=" + strconv.FormatBool(c.strict),
		"conv=" + strconv.Itoa(int(c.categories)),
	}

	casters := make([]string, 0, len(c.casters))
	for key, caster := range c.casters {
		casters = append(casters, fmt.Sprintf("%s->%s:%s@%p", key.src, key.dst, caster, caster))
	}

	slices.Sort(casters)

	return strings.Join(append(parts, casters...), ";")
}

type casterKey struct {
	src, dst reflect.Type
}
