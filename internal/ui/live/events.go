package live

import (
	"focuseval/internal/runner"
	"focuseval/internal/sample"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventState signals an orchestrator phase transition.
	EventState
	// EventSample delivers one evaluated sample.
	EventSample
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind    EventKind
	RunID   string
	ModelID string
	Total   int
	Phase   runner.State
	Index   int
	Result  sample.SampleResult
	Err     string
	Final   sample.EvaluationResult
}
