package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the enabled puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range a.deps.Registry.Puzzles() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d day %02d part %d\n", a.deps.Puzzles.Year, p.Day, p.Part)
			}
			return nil
		},
	}
}
