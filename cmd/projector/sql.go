package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"queryable-projector/sqlplan"
)

func sqlCmd(a *app) *cobra.Command {
	var (
		pair  pairFlags
		table string
	)

	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Print the SELECT reading the root columns of a projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pair.compile(a.logger)
			if err != nil {
				return err
			}

			ds, err := sqlplan.From(table, p)
			if err != nil {
				return err
			}

			query, _, err := sqlplan.ToSQL(ds)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), query)

			return nil
		},
	}

	pair.register(cmd)
	cmd.Flags().StringVar(&table, "table", "", "Table of the source entity")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
