package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"queryable-projector/internal/plan"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatDump = "dump"
)

func planCmd(a *app) *cobra.Command {
	var (
		pair   pairFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the compiled projection plan",
		Long: `Compile the projection of --source into --target and print it.

Formats:
  text  indented binding tree followed by diagnostics
  json  portable plan tree
  dump  go-spew dump of the portable plan tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pair.compile(a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch format {
			case formatText:
				fmt.Fprint(out, p.String())

				for _, d := range p.Diagnostics.All() {
					fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
				}
			case formatJSON:
				data, err := plan.MarshalIndentJSON(p)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, string(data))
			case formatDump:
				fmt.Fprint(out, plan.Dump(p))
			default:
				return fmt.Errorf("unknown format %q, want one of %s, %s, %s", format, formatText, formatJSON, formatDump)
			}

			return nil
		},
	}

	pair.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or dump")

	return cmd
}
