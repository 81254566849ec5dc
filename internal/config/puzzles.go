package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const DefaultPath = "configs/puzzles.yaml"

func LoadPuzzlesConfigFile(path string) (*PuzzlesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg PuzzlesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzlesConfig) {
	if cfg.Year == 0 {
		cfg.Year = 2023
	}
	if len(cfg.CubeCapacity) == 0 {
		cfg.CubeCapacity = map[string]int{
			"red":   12,
			"green": 13,
			"blue":  14,
		}
	}
}

func (c *PuzzlesConfig) Validate() error {
	if len(c.Puzzles) == 0 {
		return errors.New("no puzzles configured")
	}

	seen := make(map[[2]int]bool, len(c.Puzzles))
	for i, p := range c.Puzzles {
		if p.Day < 1 || p.Day > 25 {
			return fmt.Errorf("puzzle %d: invalid day %d", i, p.Day)
		}
		if p.Part < 1 || p.Part > 2 {
			return fmt.Errorf("puzzle %d: invalid part %d", i, p.Part)
		}
		key := [2]int{p.Day, p.Part}
		if seen[key] {
			return fmt.Errorf("duplicate puzzle day %d part %d", p.Day, p.Part)
		}
		seen[key] = true
	}

	for color, limit := range c.CubeCapacity {
		if limit < 0 {
			return fmt.Errorf("negative cube capacity for %s: %d", color, limit)
		}
	}

	return nil
}
