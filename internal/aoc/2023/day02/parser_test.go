package aoc2023day02

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame_SampleLine(t *testing.T) {
	game, err := ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)

	assert.Equal(t, "1", game.ID)
	require.Len(t, game.Rounds, 3)
	assert.Equal(t, Round{{Color: "blue", Amount: 3}, {Color: "red", Amount: 4}}, game.Rounds[0])
	assert.Equal(t, Round{{Color: "red", Amount: 1}, {Color: "green", Amount: 2}, {Color: "blue", Amount: 6}}, game.Rounds[1])
	assert.Equal(t, Round{{Color: "green", Amount: 2}}, game.Rounds[2])
}

func TestParseGames_Sample(t *testing.T) {
	games, err := ParseGames(Sample)
	require.NoError(t, err)
	require.Len(t, games, 5)

	for i, game := range games {
		assert.Equal(t, string(rune('1'+i)), game.ID)
	}
	assert.Len(t, games[3].Rounds, 3)
	assert.Equal(t, Cube{Color: "red", Amount: 20}, games[2].Rounds[0][2])
}

func TestParseGames_LineEndings(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		count int
	}{
		{name: "trailing newline", input: "Game 1: 1 red\nGame 2: 2 blue\n", count: 2},
		{name: "crlf", input: "Game 1: 1 red\r\nGame 2: 2 blue\r\n", count: 2},
		{name: "no trailing newline", input: "Game 7: 1 Red", count: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			games, err := ParseGames(tc.input)
			require.NoError(t, err)
			assert.Len(t, games, tc.count)
		})
	}
}

func TestParseGames_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		line     int
		column   int
	}{
		{name: "empty input", input: "", expected: `"Game "`, line: 1, column: 1},
		{name: "wrong keyword", input: "Gam 1: 1 red", expected: `"Game "`, line: 1, column: 1},
		{name: "missing id", input: "Game : 1 red", expected: "game id", line: 1, column: 6},
		{name: "missing colon space", input: "Game 1:1 red", expected: `": "`, line: 1, column: 7},
		{name: "double space in cube", input: "Game 1: 3  blue", expected: "cube color", line: 1, column: 11},
		{name: "comma without space", input: "Game 1: 3 blue,4 red", expected: "line ending", line: 1, column: 15},
		{name: "semicolon without space", input: "Game 1: 3 blue;4 red", expected: "line ending", line: 1, column: 15},
		{name: "dangling separator", input: "Game 1: 3 blue; ", expected: "cube amount", line: 1, column: 17},
		{name: "color with digits", input: "Game 1: 3 bl3e", expected: "line ending", line: 1, column: 13},
		{name: "bad second line", input: "Game 1: 3 blue\nGame 2 4 red\nGame 3: 1 red", expected: `": "`, line: 2, column: 7},
		{name: "blank line between games", input: "Game 1: 3 blue\n\nGame 2: 1 red", expected: `"Game "`, line: 2, column: 1},
		{name: "amount overflow", input: "Game 1: 99999999999999999999 red", expected: "cube amount within int range", line: 1, column: 9},
		{name: "id overflow", input: "Game 99999999999999999999: 1 red", expected: "game id within int range", line: 1, column: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			games, err := ParseGames(tc.input)
			require.Error(t, err)
			assert.Nil(t, games)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.expected, parseErr.Expected)
			assert.Equal(t, tc.line, parseErr.Pos.Line)
			assert.Equal(t, tc.column, parseErr.Pos.Column)
		})
	}
}

func TestParseGame_RejectsTrailingText(t *testing.T) {
	_, err := ParseGame("Game 1: 3 blue\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected end of line")
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseGames("Game 1: 3 blue\nGame x: 1 red")
	require.Error(t, err)
	assert.Equal(t, `line 2, col 6: expected game id, got "x: 1 red"`, err.Error())

	_, err = ParseGames("Game 1: ")
	require.Error(t, err)
	assert.Equal(t, "line 1, col 9: expected cube amount, got end of input", err.Error())
}
