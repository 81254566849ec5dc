package main

import (
	"github.com/joho/godotenv"
	"github.com/povarna/advent-of-code-2023/internal/setup"
	"github.com/povarna/advent-of-code-2023/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	inputDir   string
	logLevel   string
	logFormat  string

	logger zerolog.Logger
	deps   *setup.Dependencies
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2023 solvers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Puzzles config file (default: $PUZZLES_CONFIG_PATH or configs/puzzles.yaml)")
	cmd.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "Directory holding dayNN.txt inputs (default: $INPUT_DIR or inputs)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format, console or json (default: $LOG_FORMAT or console)")

	cmd.AddCommand(newSolveCmd(a), newCheckCmd(a), newListCmd(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	if a.configPath != "" {
		cfg.PuzzlesConfigPath = a.configPath
	}
	if a.inputDir != "" {
		cfg.InputDir = a.inputDir
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}

	// Logs share stderr with cobra; stdout is reserved for answers.
	if cfg.LogFormat == "json" {
		a.logger = logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	} else {
		a.logger = logger.NewConsole(cmd.ErrOrStderr(), cfg.LogLevel)
	}

	if envErr != nil {
		a.logger.Debug().Msg("No .env file found, using environment variables")
	}

	deps, err := setup.Wire(cfg, cmd.InOrStdin(), &a.logger)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to wire dependencies")
		return err
	}
	a.deps = deps
	return nil
}
