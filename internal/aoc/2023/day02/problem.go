package aoc2023day02

import (
	"fmt"
	"strconv"

	"github.com/povarna/advent-of-code-2023/internal/utils"
)

const Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

// Part1 sums the ids of the games that never draw more cubes of a color than
// capacity allows. A color missing from capacity is an error.
func Part1(input string, capacity map[string]int) (string, error) {
	games, err := ParseGames(input)
	if err != nil {
		return "", fmt.Errorf("failed to parse games: %w", err)
	}

	ids := []int{}
	for _, game := range games {
		if err := checkColors(game, capacity); err != nil {
			return "", err
		}
		if id, ok := game.Valid(capacity); ok {
			ids = append(ids, id)
		}
	}
	return strconv.Itoa(utils.Sum(ids...)), nil
}

// Part2 sums the minimum cube set of every game.
func Part2(input string) (string, error) {
	games, err := ParseGames(input)
	if err != nil {
		return "", fmt.Errorf("failed to parse games: %w", err)
	}

	powers := make([]int, 0, len(games))
	for _, game := range games {
		powers = append(powers, game.MinimumCubeSet())
	}
	return strconv.Itoa(utils.Sum(powers...)), nil
}

func checkColors(game Game, capacity map[string]int) error {
	for _, round := range game.Rounds {
		for _, cube := range round {
			if _, ok := capacity[cube.Color]; !ok {
				return fmt.Errorf("game %s: %w %q", game.ID, ErrUnknownColor, cube.Color)
			}
		}
	}
	return nil
}
