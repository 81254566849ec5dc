package main

import (
	"fmt"

	"github.com/povarna/advent-of-code-2023/internal/models"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		day       int
		part      int
		inputPath string
		requestID string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one puzzle and print the answer",
		Long:  "Read the puzzle input (a file, - for stdin, or INPUT_DIR/dayNN.txt[.gz|.zst]) and print the answer to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			puzzle, err := a.deps.Registry.Puzzle(day, part)
			if err != nil {
				return err
			}

			path, err := a.deps.Loader.Resolve(inputPath, puzzle.Input, day)
			if err != nil {
				return err
			}
			text, err := a.deps.Loader.Load(path)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("file", path).Int("bytes", len(text)).Msg("Input loaded")

			result, err := a.deps.Executor.Execute(cmd.Context(), models.SolveRequest{
				RequestID: requestID,
				Day:       day,
				Part:      part,
				Input:     text,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day")
	cmd.Flags().IntVarP(&part, "part", "p", 1, "Puzzle part (1 or 2)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file path, - for stdin")
	cmd.Flags().StringVar(&requestID, "request-id", "", "Request id used in logs (generated when empty)")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}
