package executor

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
//go:generate mockgen -source=../solver/solver.go -destination=mocks/mock_solver.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/advent-of-code-2023/internal/models"
	"github.com/povarna/advent-of-code-2023/internal/solver"
	"github.com/rs/zerolog"
)

// SolverLookup resolves the solver registered for a day and part
type SolverLookup interface {
	Lookup(day, part int) (solver.Solver, error)
}

type Executor struct {
	solvers SolverLookup
	logger  *zerolog.Logger
}

func NewExecutor(solvers SolverLookup, logger *zerolog.Logger) *Executor {
	return &Executor{
		solvers: solvers,
		logger:  logger,
	}
}

// Execute runs a single request. The returned error, when set, is also recorded on
// the result.
func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	id := req.RequestID
	if id == "" {
		id = uuid.NewString()
	}

	result := models.SolveResult{
		ID:   id,
		Day:  req.Day,
		Part: req.Part,
	}

	fail := func(err error) (models.SolveResult, error) {
		result.Status = models.StatusFailed
		result.Error = err.Error()
		e.logger.Error().
			Err(err).
			Str("requestID", id).
			Int("day", req.Day).
			Int("part", req.Part).
			Msg("solve failed")
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	s, err := e.solvers.Lookup(req.Day, req.Part)
	if err != nil {
		return fail(err)
	}

	if strings.TrimSpace(req.Input) == "" {
		return fail(models.NewPuzzleError(req.Day, req.Part, models.ErrEmptyInput))
	}

	e.logger.Info().
		Str("requestID", id).
		Int("day", req.Day).
		Int("part", req.Part).
		Int("input_bytes", len(req.Input)).
		Msg("starting solve")

	start := time.Now()
	answer, err := s.Solve(req.Input)
	result.Duration = time.Since(start)
	if err != nil {
		return fail(models.NewPuzzleError(req.Day, req.Part, err))
	}

	result.Answer = answer
	result.Status = models.StatusSolved

	e.logger.Info().
		Str("requestID", id).
		Str("answer", answer).
		Dur("duration", result.Duration).
		Msg("solve complete")

	return result, nil
}
