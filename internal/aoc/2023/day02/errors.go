package aoc2023day02

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned when a game draws a color that has no capacity.
var ErrUnknownColor = errors.New("no capacity for color")

// Position is a location in the parsed text. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

// ParseError reports the first point where the input stops matching the game grammar.
type ParseError struct {
	Pos       Position
	Expected  string
	Remaining string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, describe(e.Remaining))
}

const snippetLen = 24

func describe(remaining string) string {
	if remaining == "" {
		return "end of input"
	}
	snippet := remaining
	if i := strings.IndexByte(snippet, '\n'); i >= 0 {
		snippet = snippet[:i]
	}
	if len(snippet) > snippetLen {
		snippet = snippet[:snippetLen] + "..."
	}
	if snippet == "" || snippet == "\r" {
		return "line ending"
	}
	return fmt.Sprintf("%q", snippet)
}
