package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/povarna/advent-of-code-2023/internal/config"
	"github.com/povarna/advent-of-code-2023/internal/executor"
	"github.com/povarna/advent-of-code-2023/internal/input"
	"github.com/povarna/advent-of-code-2023/internal/solver"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel          string
	LogFormat         string
	PuzzlesConfigPath string
	InputDir          string
}

type Dependencies struct {
	Puzzles  *config.PuzzlesConfig
	Registry *solver.Registry
	Executor *executor.Executor
	Loader   *input.Loader
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		PuzzlesConfigPath: getEnv("PUZZLES_CONFIG_PATH", config.DefaultPath),
		InputDir:          getEnv("INPUT_DIR", "inputs"),
	}
}

func Wire(cfg *Config, stdin io.Reader, logger *zerolog.Logger) (*Dependencies, error) {
	puzzles, err := config.LoadPuzzlesConfigFile(cfg.PuzzlesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzles config: %w", err)
	}

	registry, err := solver.BuildFromConfig(puzzles, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle registry: %w", err)
	}

	return &Dependencies{
		Puzzles:  puzzles,
		Registry: registry,
		Executor: executor.NewExecutor(registry, logger),
		Loader:   input.NewLoader(cfg.InputDir, stdin),
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
