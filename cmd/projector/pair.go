package main

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/spf13/cobra"

	"queryable-projector/internal/mapping"
	"queryable-projector/internal/plan"
	"queryable-projector/store"
	"queryable-projector/warehouse"
)

// demoTypes are the types the CLI can resolve by name.
func demoTypes() *mapping.TypeSet {
	return mapping.NewTypeSet(
		reflect.TypeFor[store.Order](),
		reflect.TypeFor[store.OrderDetail](),
		reflect.TypeFor[store.Customer](),
		reflect.TypeFor[store.Supplier](),
		reflect.TypeFor[warehouse.OrderDto](),
		reflect.TypeFor[warehouse.OrderDetailDto](),
		reflect.TypeFor[warehouse.CustomerDto](),
		reflect.TypeFor[warehouse.SupplierDto](),
		reflect.TypeFor[warehouse.OrderSummary](),
	)
}

// pairFlags select a type pair, its include paths and the compiler settings.
type pairFlags struct {
	source   string
	target   string
	includes []string
	rules    string
	strict   bool
}

func (f *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "Source type, e.g. store.Order")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "Target type, e.g. warehouse.OrderDto")
	cmd.Flags().StringSliceVarP(&f.includes, "include", "i", nil, "Include paths, e.g. OrderDetails.Supplier (repeatable)")
	cmd.Flags().StringVarP(&f.rules, "rules", "r", "", "YAML mapping rules file")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on skipped fields and ignored include paths")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
}

func (f *pairFlags) compile(logger *slog.Logger) (*plan.TypePlan, error) {
	types := demoTypes()

	src, ok := types.ResolveTypeID(f.source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", mapping.ErrTypeNotFound, f.source)
	}

	dst, ok := types.ResolveTypeID(f.target)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", mapping.ErrTypeNotFound, f.target)
	}

	var rules *mapping.Registry

	if f.rules != "" {
		var err error

		rules, err = mapping.LoadFile(f.rules, types)
		if err != nil {
			return nil, err
		}

		logger.Debug("mapping rules loaded", "path", f.rules, "pairs", rules.Len())
	}

	c, err := plan.NewCompiler(
		plan.WithRules(rules),
		plan.WithLogger(logger),
		plan.WithStrict(f.strict),
	)
	if err != nil {
		return nil, err
	}

	return c.Compile(src, dst, f.includes)
}
