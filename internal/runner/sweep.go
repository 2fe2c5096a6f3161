package runner

import (
	"context"

	"go.uber.org/zap"

	"focuseval/internal/report"
	"focuseval/internal/sample"
)

// EvaluateAllModels runs every model in the configured catalog in sequence.
// A model that fails to evaluate is logged and skipped; the sweep continues.
// Returns the successful results in catalog order.
func (e *Evaluator) EvaluateAllModels(ctx context.Context) ([]sample.EvaluationResult, error) {
	results := make([]sample.EvaluationResult, 0, len(e.cfg.Models))
	for _, model := range e.cfg.Models {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := e.Evaluate(ctx, model.ID)
		if err != nil {
			e.logger.Warn("model evaluation failed, skipping",
				zap.String("model", model.ID), zap.Error(err))
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// CompareModels builds a comparison over the given completed runs using the
// configured model catalog for cost tiers and kinds.
func (e *Evaluator) CompareModels(results []sample.EvaluationResult) report.Comparison {
	return report.BuildComparison(results, e.cfg.Models)
}

// CompareHistory builds a comparison from the most recent persisted run of
// each model.
func (e *Evaluator) CompareHistory() (report.Comparison, error) {
	latest, err := e.history.Latest()
	if err != nil {
		return report.Comparison{}, err
	}
	runs := make([]sample.EvaluationResult, 0, len(latest))
	for _, model := range e.cfg.Models {
		if run, ok := latest[model.ID]; ok {
			runs = append(runs, run)
		}
	}
	return e.CompareModels(runs), nil
}
