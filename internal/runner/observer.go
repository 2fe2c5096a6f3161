package runner

import "focuseval/internal/sample"

// RunObserver receives run lifecycle events for UI or logging. Callbacks are
// invoked from the run goroutine; implementations must not block.
type RunObserver interface {
	// OnRunStart signals the start of a run after the corpus is loaded.
	OnRunStart(runID string, modelID string, total int)
	// OnStateChange signals a lifecycle transition.
	OnStateChange(state State)
	// OnSampleDone delivers one scored sample, or the error that failed it.
	OnSampleDone(index int, result sample.SampleResult, err error)
	// OnRunEnd signals run completion. err is nil on success.
	OnRunEnd(result sample.EvaluationResult, err error)
}

// nopObserver is used when no observer is configured.
type nopObserver struct{}

func (nopObserver) OnRunStart(string, string, int)               {}
func (nopObserver) OnStateChange(State)                          {}
func (nopObserver) OnSampleDone(int, sample.SampleResult, error) {}
func (nopObserver) OnRunEnd(sample.EvaluationResult, error)      {}
