package models

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPuzzle  = errors.New("unknown puzzle")
	ErrPuzzleDisabled = errors.New("puzzle disabled")
	ErrEmptyInput     = errors.New("empty input")
)

// PuzzleError ties a failure to the puzzle that produced it.
type PuzzleError struct {
	Day  int
	Part int
	Err  error
}

func NewPuzzleError(day, part int, err error) *PuzzleError {
	return &PuzzleError{Day: day, Part: part, Err: err}
}

func (e *PuzzleError) Error() string {
	return fmt.Sprintf("day %02d part %d: %v", e.Day, e.Part, e.Err)
}

func (e *PuzzleError) Unwrap() error { return e.Err }
