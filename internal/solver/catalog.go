package solver

import (
	aoc2023day01 "github.com/povarna/advent-of-code-2023/internal/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/advent-of-code-2023/internal/aoc/2023/day02"
)

func infallible(f func(string) string) SolverFunc {
	return func(input string) (string, error) {
		return f(input), nil
	}
}

// catalog lists every solver the binary knows about, keyed by day and part.
func catalog(capacity map[string]int) map[[2]int]Puzzle {
	return map[[2]int]Puzzle{
		{1, 1}: {
			Solver: infallible(aoc2023day01.Part1),
			Sample: aoc2023day01.Sample1,
			Want:   "142",
		},
		{1, 2}: {
			Solver: infallible(aoc2023day01.Part2),
			Sample: aoc2023day01.Sample2,
			Want:   "281",
		},
		{2, 1}: {
			Solver: SolverFunc(func(input string) (string, error) {
				return aoc2023day02.Part1(input, capacity)
			}),
			Sample: aoc2023day02.Sample,
			Want:   "8",
		},
		{2, 2}: {
			Solver: SolverFunc(aoc2023day02.Part2),
			Sample: aoc2023day02.Sample,
			Want:   "2286",
		},
	}
}
