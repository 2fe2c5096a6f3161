package runner

import "errors"

var (
	// ErrBusy is returned when a run is already in progress. The predictor's
	// active model is shared state, so runs never overlap.
	ErrBusy = errors.New("an evaluation run is already in progress")

	// ErrInsufficientData is returned when the corpus holds no usable samples.
	ErrInsufficientData = errors.New("corpus holds no usable samples")

	// ErrModelNotAvailable is returned when the requested model did not become
	// ready within the configured polling budget.
	ErrModelNotAvailable = errors.New("requested model did not become ready")
)
