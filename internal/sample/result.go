package sample

import (
	"math"
	"time"
)

// SampleResult pairs one ground-truth sample with one prediction.
type SampleResult struct {
	Sample          Sample     `json:"sample"`
	Prediction      Prediction `json:"prediction"`
	IsCorrect       bool       `json:"is_correct"`
	ConfidenceError float64    `json:"confidence_error"`
	LatencyMS       float64    `json:"latency_ms"`
}

// NewSampleResult derives correctness and confidence error for one evaluated
// sample. ConfidenceError is the gap between stated confidence and the
// correctness indicator: |confidence - 1| when correct, |confidence| otherwise.
func NewSampleResult(s Sample, p Prediction, latency time.Duration) SampleResult {
	indicator := 0.0
	if p.IsValid == s.IsValid {
		indicator = 1.0
	}
	return SampleResult{
		Sample:          s,
		Prediction:      p,
		IsCorrect:       p.IsValid == s.IsValid,
		ConfidenceError: math.Abs(p.Confidence - indicator),
		LatencyMS:       float64(latency.Microseconds()) / 1000.0,
	}
}

// EvaluationMetrics is the aggregate quality record for one run. It is
// derived-only: constructed by the metrics engine, never assembled by hand.
type EvaluationMetrics struct {
	Accuracy            float64               `json:"accuracy"`
	Precision           float64               `json:"precision"`
	Recall              float64               `json:"recall"`
	F1                  float64               `json:"f1"`
	Specificity         float64               `json:"specificity"`
	CalibrationError    float64               `json:"calibration_error"`
	AUCROC              float64               `json:"auc_roc"`
	ConfidenceCorr      float64               `json:"confidence_accuracy_correlation"`
	AvgResponseTimeMS   float64               `json:"avg_response_time_ms"`
	FailureRate         float64               `json:"failure_rate"`
	AccuracyByFocusArea map[FocusArea]float64 `json:"accuracy_by_focus_area,omitempty"`
	AccuracyByApp       map[string]float64    `json:"accuracy_by_app,omitempty"`
	OCRAccuracyCorr     float64               `json:"ocr_accuracy_correlation"`
	TemporalConsistency float64               `json:"temporal_consistency"`
}

// EvaluationResult is one completed run. It is created exactly once at run
// completion, appended to the run history, and never edited in place.
type EvaluationResult struct {
	RunID        string            `json:"run_id"`
	ModelID      string            `json:"model_id"`
	Metrics      EvaluationMetrics `json:"metrics"`
	StartedAt    time.Time         `json:"started_at"`
	DurationMS   float64           `json:"duration_ms"`
	SampleCount  int               `json:"sample_count"`
	FailureCount int               `json:"failure_count"`
	Results      []SampleResult    `json:"results"`
}
