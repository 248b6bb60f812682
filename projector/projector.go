package projector

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/plan"
	"queryable-projector/node"
	"queryable-projector/query"
)

var (
	ErrNilSource   = errors.New("query source is nil")
	ErrElementType = errors.New("query element type cannot be projected")
	ErrTargetType  = errors.New("target type is not a struct or a pointer to one")
)

var defaultCache = plan.NewCache()

var defaultCompiler = sync.OnceValues(func() (*plan.Compiler, error) {
	return plan.NewCompiler(plan.WithCache(defaultCache))
})

// DefaultCache returns the plan cache shared by entry points called without WithCompiler.
func DefaultCache() *plan.Cache {
	return defaultCache
}

func configure(opts []Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.compiler != nil {
		return cfg, nil
	}

	var err error

	if len(cfg.plan) == 0 {
		cfg.compiler, err = defaultCompiler()
	} else {
		cfg.compiler, err = plan.NewCompiler(append([]plan.Option{plan.WithCache(defaultCache)}, cfg.plan...)...)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create compiler: %w", err)
	}

	return cfg, nil
}

func projectorFor(c *plan.Compiler, src, dst reflect.Type, includes []string) (*node.Projector, error) {
	if src == nil {
		return nil, ErrElementType
	}

	if k := analyze.Indirect(src).Kind(); k != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is a %s", ErrElementType, src, k)
	}

	if k := analyze.Indirect(dst).Kind(); k != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is a %s", ErrTargetType, dst, k)
	}

	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return nil, fmt.Errorf("%w: %s has more than one pointer level", ErrTargetType, dst)
	}

	p, err := c.CompileCached(src, dst, includes)
	if err != nil {
		return nil, err
	}

	return node.Build(p), nil
}

// Project projects every element of src into a D, populating the relationships named
// by the query's include paths. A nil element yields the zero D.
func Project[D any](src query.Source, opts ...Option) ([]D, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}

	pr, err := projectorFor(cfg.compiler, src.ElementType(), reflect.TypeFor[D](), src.IncludedPaths())
	if err != nil {
		return nil, err
	}

	out := make([]D, 0)

	err = src.Each(func(v any) error {
		d, err := apply[D](pr, reflect.ValueOf(v))
		if err != nil {
			return fmt.Errorf("element %d: %w", len(out), err)
		}

		out = append(out, d)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if cfg.logger != nil {
		cfg.logger.Debug("query projected",
			"source", src.ElementType().String(),
			"target", reflect.TypeFor[D]().String(),
			"elements", len(out),
		)
	}

	return out, nil
}

// ProjectTo projects items into D with the given include paths.
func ProjectTo[S, D any](items []S, includes []string, opts ...Option) ([]D, error) {
	return Project[D](query.From(items).Include(includes...), opts...)
}

// CreateProjector compiles the projection of S into D once and returns a reusable,
// concurrency safe function applying it. A nil S pointer yields the zero D.
func CreateProjector[S, D any](includes []string, opts ...Option) (func(S) (D, error), error) {
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}

	pr, err := projectorFor(cfg.compiler, reflect.TypeFor[S](), reflect.TypeFor[D](), includes)
	if err != nil {
		return nil, err
	}

	return func(s S) (D, error) {
		return apply[D](pr, reflect.ValueOf(&s))
	}, nil
}

// apply runs pr on v and returns the result as D, either the *Target itself or the Target value.
func apply[D any](pr *node.Projector, v reflect.Value) (D, error) {
	var zero D

	out, err := pr.ProjectValue(v)
	if err != nil {
		if errors.Is(err, node.ErrSourceType) {
			return zero, fmt.Errorf("%w: %w", ErrElementType, err)
		}

		return zero, err
	}

	if !out.IsValid() {
		return zero, nil
	}

	if d, ok := out.Interface().(D); ok {
		return d, nil
	}

	return out.Elem().Interface().(D), nil
}
