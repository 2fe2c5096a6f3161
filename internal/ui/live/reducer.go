package live

import (
	"fmt"
	"time"

	"focuseval/internal/runner"
)

// Reduce applies one event to the UI state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventRunStart:
		state.RunID = event.RunID
		state.ModelID = event.ModelID
		state.Total = event.Total
		state.Rows = nil
		state.Counts = StatusCounts{}
		if state.StartedAt.IsZero() {
			state.StartedAt = time.Now()
		}
	case EventState:
		state.Phase = event.Phase
	case EventSample:
		state = applySample(state, event)
	case EventRunEnd:
		state.Done = true
		state.Final = event.Final
		state.FinalErr = event.Err
		if event.Err == "" {
			state.LastEvent = fmt.Sprintf("run %s complete: F1 %.3f", event.Final.RunID, event.Final.Metrics.F1)
		} else {
			state.LastEvent = "run failed: " + event.Err
		}
	}
	return state
}

func applySample(state State, event Event) State {
	row := SampleRow{
		Index:      event.Index,
		SampleID:   event.Result.Sample.ID,
		AppName:    event.Result.Sample.AppName,
		Predicted:  event.Result.Prediction.IsValid,
		Actual:     event.Result.Sample.IsValid,
		Correct:    event.Result.IsCorrect,
		Confidence: event.Result.Prediction.Confidence,
		LatencyMS:  event.Result.LatencyMS,
	}
	if event.Err != "" {
		row.Failed = true
		row.Error = event.Err
	}
	state.Rows = append(state.Rows, row)
	state.Counts = recount(state.Rows)
	state.LastEvent = formatSampleEvent(row)
	return state
}

// recount recomputes outcome counts for the current rows.
func recount(rows []SampleRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		counts.Completed++
		switch {
		case row.Failed:
			counts.Failed++
		case row.Correct:
			counts.Correct++
		default:
			counts.Incorrect++
		}
	}
	return counts
}

func formatSampleEvent(row SampleRow) string {
	if row.Failed {
		return fmt.Sprintf("sample %s failed: %s", row.SampleID, row.Error)
	}
	outcome := "incorrect"
	if row.Correct {
		outcome = "correct"
	}
	return fmt.Sprintf("sample %s %s (%.2f conf, %s)", row.SampleID, outcome, row.Confidence, formatLatency(row.LatencyMS))
}

// Progress reports completion in [0, 1].
func (s State) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	p := float64(s.Counts.Completed) / float64(s.Total)
	if p > 1 {
		p = 1
	}
	return p
}

// phaseLabel maps orchestrator states to display labels.
func phaseLabel(phase runner.State) string {
	switch phase {
	case runner.StateLoading:
		return "loading corpus"
	case runner.StateSwitchingModel:
		return "switching model"
	case runner.StateRunning:
		return "evaluating"
	case runner.StateAggregating:
		return "computing metrics"
	case runner.StateReporting:
		return "writing reports"
	case runner.StateFailed:
		return "failed"
	default:
		return string(phase)
	}
}
