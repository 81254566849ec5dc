package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/advent-of-code-2023/internal/executor/mocks"
	"github.com/povarna/advent-of-code-2023/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestExecutor_Execute_Solved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := mocks.NewMockSolverLookup(ctrl)
	mockSolver := mocks.NewMockSolver(ctrl)

	req := models.SolveRequest{RequestID: "req-001", Day: 1, Part: 2, Input: "twone"}

	mockLookup.EXPECT().Lookup(1, 2).Return(mockSolver, nil)
	mockSolver.EXPECT().Solve("twone").Return("21", nil)

	executor := NewExecutor(mockLookup, newTestLogger())
	result, err := executor.Execute(context.Background(), req)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != "req-001" {
		t.Errorf("expected ID req-001, got %s", result.ID)
	}
	if result.Answer != "21" {
		t.Errorf("expected answer 21, got %s", result.Answer)
	}
	if result.Status != models.StatusSolved {
		t.Errorf("expected status solved, got %s", result.Status)
	}
	if result.Day != 1 || result.Part != 2 {
		t.Errorf("expected day 1 part 2, got day %d part %d", result.Day, result.Part)
	}
}

func TestExecutor_Execute_GeneratesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := mocks.NewMockSolverLookup(ctrl)
	mockSolver := mocks.NewMockSolver(ctrl)

	mockLookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(mockSolver, nil).Times(2)
	mockSolver.EXPECT().Solve(gomock.Any()).Return("0", nil).Times(2)

	executor := NewExecutor(mockLookup, newTestLogger())
	first, _ := executor.Execute(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: "abc"})
	second, _ := executor.Execute(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: "abc"})

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected generated request ids")
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, got %s twice", first.ID)
	}
}

func TestExecutor_Execute_UnknownPuzzle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := mocks.NewMockSolverLookup(ctrl)
	mockLookup.EXPECT().Lookup(7, 1).Return(nil, models.NewPuzzleError(7, 1, models.ErrUnknownPuzzle))

	executor := NewExecutor(mockLookup, newTestLogger())
	result, err := executor.Execute(context.Background(), models.SolveRequest{RequestID: "req-002", Day: 7, Part: 1, Input: "x"})

	if !errors.Is(err, models.ErrUnknownPuzzle) {
		t.Fatalf("expected ErrUnknownPuzzle, got %v", err)
	}
	if result.Status != models.StatusFailed {
		t.Errorf("expected status failed, got %s", result.Status)
	}
	if result.Error == "" {
		t.Error("expected error message on result")
	}
}

func TestExecutor_Execute_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := mocks.NewMockSolverLookup(ctrl)
	mockSolver := mocks.NewMockSolver(ctrl)

	// The solver must not run for blank input
	mockLookup.EXPECT().Lookup(2, 2).Return(mockSolver, nil)

	executor := NewExecutor(mockLookup, newTestLogger())
	_, err := executor.Execute(context.Background(), models.SolveRequest{Day: 2, Part: 2, Input: " \n\t"})

	if !errors.Is(err, models.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestExecutor_Execute_SolverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := mocks.NewMockSolverLookup(ctrl)
	mockSolver := mocks.NewMockSolver(ctrl)

	parseErr := errors.New("line 1, col 1: expected \"Game \", got \"oops\"")
	mockLookup.EXPECT().Lookup(2, 2).Return(mockSolver, nil)
	mockSolver.EXPECT().Solve("oops").Return("", parseErr)

	executor := NewExecutor(mockLookup, newTestLogger())
	result, err := executor.Execute(context.Background(), models.SolveRequest{Day: 2, Part: 2, Input: "oops"})

	if !errors.Is(err, parseErr) {
		t.Fatalf("expected solver error in chain, got %v", err)
	}

	var puzzleErr *models.PuzzleError
	if !errors.As(err, &puzzleErr) {
		t.Fatalf("expected PuzzleError, got %T", err)
	}
	if puzzleErr.Day != 2 || puzzleErr.Part != 2 {
		t.Errorf("expected day 2 part 2, got day %d part %d", puzzleErr.Day, puzzleErr.Part)
	}
	if result.Answer != "" {
		t.Errorf("expected no answer, got %s", result.Answer)
	}
	if result.Status != models.StatusFailed {
		t.Errorf("expected status failed, got %s", result.Status)
	}
}

func TestExecutor_Execute_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No calls expected on the lookup
	mockLookup := mocks.NewMockSolverLookup(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := NewExecutor(mockLookup, newTestLogger())
	result, err := executor.Execute(ctx, models.SolveRequest{Day: 1, Part: 1, Input: "1"})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result.Status != models.StatusFailed {
		t.Errorf("expected status failed, got %s", result.Status)
	}
}
