package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"focuseval/internal/sample"
)

// ErrFingerprintMismatch is returned when a run ID is already ingested with
// different content. Run results are immutable; this indicates ID reuse.
var ErrFingerprintMismatch = errors.New("run already ingested with different content")

// IngestRun stores one completed run and its per-sample rows. Re-ingesting
// the same result is a no-op keyed on the canonical-JSON fingerprint.
func (w *Warehouse) IngestRun(ctx context.Context, result sample.EvaluationResult) error {
	fingerprint, err := FingerprintJSON(result)
	if err != nil {
		return fmt.Errorf("fingerprint run: %w", err)
	}

	var existing string
	err = w.db.QueryRowContext(ctx,
		`SELECT fingerprint FROM runs WHERE run_id = ?`, result.RunID).Scan(&existing)
	switch {
	case err == nil:
		if existing != fingerprint {
			return fmt.Errorf("%w: %s", ErrFingerprintMismatch, result.RunID)
		}
		return nil
	case errors.Is(err, sql.ErrNoRows):
	default:
		return fmt.Errorf("query run fingerprint: %w", err)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m := result.Metrics
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (
		   run_id, model_id, started_at, duration_ms, sample_count, failure_count,
		   accuracy, precision_score, recall, f1, specificity, calibration_error,
		   auc_roc, confidence_correlation, avg_response_time_ms, failure_rate,
		   temporal_consistency, fingerprint
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.RunID, result.ModelID, result.StartedAt, result.DurationMS,
		result.SampleCount, result.FailureCount,
		m.Accuracy, m.Precision, m.Recall, m.F1, m.Specificity, m.CalibrationError,
		m.AUCROC, m.ConfidenceCorr, m.AvgResponseTimeMS, m.FailureRate,
		m.TemporalConsistency, fingerprint,
	); err != nil {
		return fmt.Errorf("insert run %s: %w", result.RunID, err)
	}

	for i, r := range result.Results {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sample_results (
			   run_id, result_index, sample_id, app_name, focus_area, actual_valid,
			   predicted_valid, confidence, is_correct, confidence_error, latency_ms
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			result.RunID, i, r.Sample.ID, r.Sample.AppName, string(r.Sample.FocusArea),
			r.Sample.IsValid, r.Prediction.IsValid, r.Prediction.Confidence,
			r.IsCorrect, r.ConfidenceError, r.LatencyMS,
		); err != nil {
			return fmt.Errorf("insert sample result %s/%s: %w", result.RunID, r.Sample.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}
