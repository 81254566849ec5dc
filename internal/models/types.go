package models

import (
	"time"
)

// Input message
type SolveRequest struct {
	RequestID string `json:"request_id" jsonschema:"optional request identifier"`
	Day       int    `json:"day" jsonschema:"puzzle day (1-25)"`
	Part      int    `json:"part" jsonschema:"puzzle part (1 or 2)"`
	Input     string `json:"input" jsonschema:"raw puzzle input"`
}

type Status string

const (
	StatusSolved Status = "solved"
	StatusFailed Status = "failed"
)

// Final output of one solve
type SolveResult struct {
	ID       string        `json:"id"`
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Answer   string        `json:"answer,omitempty"`
	Status   Status        `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}
