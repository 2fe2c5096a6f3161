package live

import (
	"time"

	"focuseval/internal/runner"
	"focuseval/internal/sample"
)

// SampleRow holds UI state for one evaluated sample.
type SampleRow struct {
	Index      int
	SampleID   string
	AppName    string
	Predicted  bool
	Actual     bool
	Correct    bool
	Failed     bool
	Confidence float64
	LatencyMS  float64
	Error      string
}

// StatusCounts aggregates row outcomes.
type StatusCounts struct {
	Completed int
	Correct   int
	Incorrect int
	Failed    int
}

// State captures the live UI state for one evaluation run.
type State struct {
	RunID     string
	ModelID   string
	Phase     runner.State
	Total     int
	StartedAt time.Time
	Rows      []SampleRow
	Counts    StatusCounts
	LastEvent string
	Done      bool
	Final     sample.EvaluationResult
	FinalErr  string
}
