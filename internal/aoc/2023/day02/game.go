package aoc2023day02

import (
	"fmt"
	"maps"
	"slices"

	"github.com/povarna/advent-of-code-2023/internal/utils"
)

// Cube is one "<amount> <color>" observation.
type Cube struct {
	Color  string
	Amount int
}

// Round is a single draw, cubes kept in input order.
type Round []Cube

type Game struct {
	ID     string
	Rounds []Round
}

// MinimumCubeSet multiplies together the largest amount seen for every color in
// the game. A game without cubes yields 1.
func (g Game) MinimumCubeSet() int {
	maxima := make(map[string]int)
	for _, round := range g.Rounds {
		for _, cube := range round {
			if seen, ok := maxima[cube.Color]; !ok || cube.Amount > seen {
				maxima[cube.Color] = cube.Amount
			}
		}
	}
	return utils.Product(slices.Collect(maps.Values(maxima))...)
}

// Valid reports the game id when no cube exceeds the capacity of its color.
// Every color in the game must be present in capacity; an unknown color panics.
func (g Game) Valid(capacity map[string]int) (int, bool) {
	for _, round := range g.Rounds {
		for _, cube := range round {
			limit, ok := capacity[cube.Color]
			if !ok {
				panic(fmt.Sprintf("game %s: no capacity for color %q", g.ID, cube.Color))
			}
			if cube.Amount > limit {
				return 0, false
			}
		}
	}
	return utils.ToInt(g.ID), true
}
