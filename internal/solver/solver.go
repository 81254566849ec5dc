package solver

// Solver turns a raw puzzle input into its answer.
type Solver interface {
	Solve(input string) (string, error)
}

type SolverFunc func(input string) (string, error)

func (f SolverFunc) Solve(input string) (string, error) {
	return f(input)
}

// Puzzle is a registered solver together with its worked example.
type Puzzle struct {
	Day    int
	Part   int
	Solver Solver
	Sample string
	Want   string
	Input  string
}
