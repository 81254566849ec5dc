package solver

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/povarna/advent-of-code-2023/internal/config"
	"github.com/povarna/advent-of-code-2023/internal/models"
	"github.com/rs/zerolog"
)

// Registry holds the puzzles enabled in configuration.
type Registry struct {
	puzzles  map[[2]int]Puzzle
	disabled map[[2]int]bool
}

func NewRegistry(puzzles ...Puzzle) *Registry {
	r := &Registry{
		puzzles:  make(map[[2]int]Puzzle, len(puzzles)),
		disabled: make(map[[2]int]bool),
	}
	for _, p := range puzzles {
		r.puzzles[[2]int{p.Day, p.Part}] = p
	}
	return r
}

// BuildFromConfig registers every enabled puzzle from cfg. A configured puzzle
// with no solver behind it is an error.
func BuildFromConfig(cfg *config.PuzzlesConfig, logger *zerolog.Logger) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("puzzles config is nil")
	}

	known := catalog(cfg.CubeCapacity)
	r := NewRegistry()

	for _, entry := range cfg.Puzzles {
		key := [2]int{entry.Day, entry.Part}
		puzzle, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("day %d part %d: %w", entry.Day, entry.Part, models.ErrUnknownPuzzle)
		}

		if !entry.Enabled {
			logger.Info().
				Int("day", entry.Day).
				Int("part", entry.Part).
				Msg("puzzle disabled in config, skipping")
			r.disabled[key] = true
			continue
		}

		puzzle.Day = entry.Day
		puzzle.Part = entry.Part
		puzzle.Input = entry.Input
		r.puzzles[key] = puzzle
	}

	if len(r.puzzles) == 0 {
		return nil, fmt.Errorf("no enabled puzzles found in config")
	}

	logger.Info().
		Int("year", cfg.Year).
		Int("total_puzzles", len(r.puzzles)).
		Msg("puzzle registry built successfully")

	return r, nil
}

func (r *Registry) Lookup(day, part int) (Solver, error) {
	puzzle, err := r.Puzzle(day, part)
	if err != nil {
		return nil, err
	}
	return puzzle.Solver, nil
}

func (r *Registry) Puzzle(day, part int) (Puzzle, error) {
	key := [2]int{day, part}
	if puzzle, ok := r.puzzles[key]; ok {
		return puzzle, nil
	}
	if r.disabled[key] {
		return Puzzle{}, models.NewPuzzleError(day, part, models.ErrPuzzleDisabled)
	}
	return Puzzle{}, models.NewPuzzleError(day, part, models.ErrUnknownPuzzle)
}

// Puzzles returns the registered puzzles ordered by day, then part.
func (r *Registry) Puzzles() []Puzzle {
	list := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b Puzzle) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Part, b.Part))
	})
	return list
}
