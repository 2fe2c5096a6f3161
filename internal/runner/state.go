package runner

// State is one phase of the run lifecycle.
type State string

const (
	StateIdle           State = "idle"
	StateLoading        State = "loading"
	StateSwitchingModel State = "switching_model"
	StateRunning        State = "running"
	StateAggregating    State = "aggregating"
	StateReporting      State = "reporting"
	StateFailed         State = "failed"
)

// Status is an immutable snapshot of run progress. A fresh value is published
// on every transition; readers never see a partially updated snapshot.
type Status struct {
	State     State
	ModelID   string
	Completed int
	Total     int
	LastError string
}

// Progress reports completion in [0, 1]; zero before the total is known.
func (s Status) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
