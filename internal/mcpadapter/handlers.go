package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/advent-of-code-2023/internal/executor"
	"github.com/povarna/advent-of-code-2023/internal/models"
	"github.com/povarna/advent-of-code-2023/internal/solver"
)

// SolveInput is the MCP tool input schema for a single solve.
type SolveInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional request identifier"`
	Day       int    `json:"day" jsonschema:"puzzle day, 1 or 2"`
	Part      int    `json:"part" jsonschema:"puzzle part, 1 or 2"`
	Input     string `json:"input" jsonschema:"raw puzzle input text"`
}

type ListPuzzlesInput struct{}

type PuzzleInfo struct {
	Day  int `json:"day"`
	Part int `json:"part"`
}

type PuzzleList struct {
	Puzzles []PuzzleInfo `json:"puzzles"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return Solve(ctx, exec, req, input)
	}
}

// Solve runs one puzzle and returns the result. Failures are returned as tool
// errors so the client sees the message.
func Solve(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	result, err := exec.Execute(ctx, models.SolveRequest{
		RequestID: input.RequestID,
		Day:       input.Day,
		Part:      input.Part,
		Input:     input.Input,
	})
	return nil, result, err
}

func NewListPuzzlesHandler(registry *solver.Registry) func(context.Context, *mcp.CallToolRequest, ListPuzzlesInput) (*mcp.CallToolResult, PuzzleList, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPuzzlesInput) (*mcp.CallToolResult, PuzzleList, error) {
		list := PuzzleList{Puzzles: []PuzzleInfo{}}
		for _, p := range registry.Puzzles() {
			list.Puzzles = append(list.Puzzles, PuzzleInfo{Day: p.Day, Part: p.Part})
		}
		return nil, list, nil
	}
}

func NewServer(exec *executor.Executor, registry *solver.Registry, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "aoc2023",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve",
		Description: "Solve an Advent of Code 2023 puzzle (day, part) for the given input text and return the answer",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the puzzles this server can solve",
	}, NewListPuzzlesHandler(registry))

	return server
}
