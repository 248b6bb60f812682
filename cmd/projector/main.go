// Package main provides the projector CLI.
//
// projector inspects projection plans between the demo store entities and warehouse DTOs:
//   - plan prints the compiled plan as a tree, JSON or a go-spew dump
//   - sql prints the SELECT a plan pushes down to the database
//   - rules writes a rule file skeleton or checks a rule file
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type app struct {
	verbose bool
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "projector",
		Short: "Inspect projection plans between entities and DTOs",
		Long: `projector compiles projection plans between the demo store entities and
warehouse DTOs and shows what a projection reads and writes.

Examples:
  projector plan --source store.Order --target warehouse.OrderDto --include OrderDetails.Supplier
  projector plan --source Order --target OrderDto --format json --rules rules.yaml
  projector sql --source Order --target OrderDto --table orders
  projector rules skeleton --source Order --target OrderDto --include Customer -o rules.yaml
  projector rules check rules.yaml`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log compilation details")

	rootCmd.AddCommand(
		planCmd(a),
		sqlCmd(a),
		rulesCmd(a),
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
