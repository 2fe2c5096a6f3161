// Package predictor defines the boundary to the classifier under evaluation.
// The predictor itself (local or remote language model) is external; this
// package carries the contract and an HTTP client for the reference server.
package predictor

import (
	"context"

	"focuseval/internal/sample"
)

// ModelInfo describes one candidate model exposed by the predictor service.
type ModelInfo struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"` // local or remote
	CostTier int    `json:"cost_tier"`
}

// Predictor is the external classifier being evaluated. The orchestrator
// keeps a single Analyze call in flight at a time: the predictor's active
// model is process-wide shared state.
type Predictor interface {
	// Analyze classifies one sample against the user's stated focus goal.
	Analyze(ctx context.Context, smp sample.Sample) (sample.Prediction, error)
	// ActiveModel reports the model currently serving Analyze calls.
	ActiveModel(ctx context.Context) (string, error)
	// SwitchModel requests an asynchronous switch of the active model.
	SwitchModel(ctx context.Context, id string) error
	// ModelReady reports whether the active model finished loading.
	ModelReady(ctx context.Context) (bool, error)
	// ListModels returns the catalog of available model descriptors.
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
