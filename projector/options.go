package projector

import (
	"queryable-projector/internal/mapping"
	"queryable-projector/internal/plan"
	"queryable-projector/options"
)

// Option configures a projection entry point.
type Option func(*config)

type config struct {
	compiler *plan.Compiler
	logger   plan.Logger
	plan     []plan.Option
}

// WithRules sets the mapping rules for the projection.
func WithRules(rules *mapping.Registry) Option {
	return func(c *config) {
		c.plan = append(c.plan, plan.WithRules(rules))
	}
}

// WithLogger sets the logger used for compilation and projection tracing.
func WithLogger(logger plan.Logger) Option {
	return func(c *config) {
		c.logger = logger
		c.plan = append(c.plan, plan.WithLogger(logger))
	}
}

// WithStrict fails compilation on skipped fields and ignored include paths.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.plan = append(c.plan, plan.WithStrict(strict))
	}
}

// WithConversions sets the scalar conversion categories a projection may apply.
func WithConversions(categories options.CategoryEnum) Option {
	return func(c *config) {
		c.plan = append(c.plan, plan.WithConversions(categories))
	}
}

// WithCasters registers converter functions for scalar fields, see plan.ParseCaster.
func WithCasters(fns ...any) Option {
	return func(c *config) {
		c.plan = append(c.plan, plan.WithCasters(fns...))
	}
}

// WithCompiler uses compiler as is. Rules, strictness, conversions and casters
// given alongside are ignored.
func WithCompiler(compiler *plan.Compiler) Option {
	return func(c *config) {
		c.compiler = compiler
	}
}
