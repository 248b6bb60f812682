package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"queryable-projector/internal/diagnostic"
	"queryable-projector/internal/mapping"
	"queryable-projector/internal/plan"
)

func rulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Write and check YAML mapping rules",
	}

	cmd.AddCommand(
		rulesSkeletonCmd(a),
		rulesCheckCmd(a),
		rulesExportCmd(a),
	)

	return cmd
}

func rulesSkeletonCmd(a *app) *cobra.Command {
	var (
		pair   pairFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "skeleton",
		Short: "Pin the current plan as explicit-only rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pair.compile(a.logger)
			if err != nil {
				return err
			}

			mf := plan.Skeleton(p)

			if output != "" {
				if err := mapping.WriteFile(mf, output); err != nil {
					return err
				}

				a.logger.Info("rules skeleton written", "path", output, "mappings", len(mf.TypeMappings))

				return nil
			}

			data, err := mapping.Marshal(mf)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	pair.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func rulesCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a rules file against the known types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mf, err := mapping.ReadFile(args[0])
			if err != nil {
				return err
			}

			types := demoTypes()

			diags := mapping.Validate(mf, types)
			if !diags.HasErrors() {
				compiled, err := compileRules(mf, types, a.logger)
				if err != nil {
					return err
				}

				diags.Merge(compiled)
			}

			for _, d := range diags.All() {
				if d.Severity == diagnostic.DiagnosticInfo {
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)
			}

			a.logger.Debug("rules checked", "path", args[0], "mappings", len(mf.TypeMappings), "findings", diags.Len())

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d errors", args[0], len(diags.Errors))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}
}

// compileRules compiles every rule pair without includes and collects what the plans skip.
func compileRules(mf *mapping.MappingFile, types *mapping.TypeSet, logger *slog.Logger) (*diagnostic.Diagnostics, error) {
	rules, err := mf.Build(types)
	if err != nil {
		return nil, err
	}

	c, err := plan.NewCompiler(plan.WithRules(rules), plan.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	res := &diagnostic.Diagnostics{}

	for _, pair := range rules.Pairs() {
		p, err := c.Compile(pair.Source, pair.Target, nil)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", pair, err)
		}

		res.Merge(p.Diagnostics)
	}

	return res, nil
}

func rulesExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Print a rules file with full type names and defaults applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := mapping.LoadFile(args[0], demoTypes())
			if err != nil {
				return err
			}

			data, err := mapping.Marshal(mapping.FromRegistry(rules))
			if err != nil {
				return err
			}

			a.logger.Debug("rules exported", "path", args[0], "pairs", rules.Len())

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
