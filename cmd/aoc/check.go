package main

import (
	"fmt"

	"github.com/povarna/advent-of-code-2023/internal/models"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run every enabled puzzle against its worked example",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			for _, p := range a.deps.Registry.Puzzles() {
				result, err := a.deps.Executor.Execute(cmd.Context(), models.SolveRequest{
					RequestID: fmt.Sprintf("sample-%02d-%d", p.Day, p.Part),
					Day:       p.Day,
					Part:      p.Part,
					Input:     p.Sample,
				})

				switch {
				case err != nil:
					failed++
					fmt.Fprintf(out, "FAIL day %02d part %d: %v\n", p.Day, p.Part, err)
				case result.Answer != p.Want:
					failed++
					fmt.Fprintf(out, "FAIL day %02d part %d: got %s, want %s\n", p.Day, p.Part, result.Answer, p.Want)
				default:
					fmt.Fprintf(out, "ok   day %02d part %d: %s\n", p.Day, p.Part, result.Answer)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d sample(s) failed", failed)
			}
			return nil
		},
	}
}
