package report

import (
	"fmt"
	"sort"
	"strings"

	"focuseval/internal/sample"
)

// Thresholds driving the rule-based recommendations.
const (
	lowF1Threshold        = 0.75
	lowPrecisionThreshold = 0.70
	lowRecallThreshold    = 0.70
	highCalibrationError  = 0.15
	highLatencyMS         = 2000.0
	highFailureRate       = 0.10
	weakCategoryAccuracy  = 0.60
)

// Recommendations derives deployment advice from aggregate metrics.
func Recommendations(m sample.EvaluationMetrics) []string {
	var recs []string
	if m.F1 < lowF1Threshold {
		recs = append(recs, fmt.Sprintf("F1 %.3f is below %.2f; the model is not ready for deployment", m.F1, lowF1Threshold))
	}
	if m.Precision < lowPrecisionThreshold {
		recs = append(recs, fmt.Sprintf("precision %.3f is low; the classifier is too lenient and passes off-task activity", m.Precision))
	}
	if m.Recall < lowRecallThreshold {
		recs = append(recs, fmt.Sprintf("recall %.3f is low; the classifier is too strict and flags on-task activity", m.Recall))
	}
	if m.CalibrationError > highCalibrationError {
		recs = append(recs, fmt.Sprintf("calibration error %.3f exceeds %.2f; stated confidence does not track correctness", m.CalibrationError, highCalibrationError))
	}
	if m.AvgResponseTimeMS > highLatencyMS {
		recs = append(recs, fmt.Sprintf("average response time %.0fms exceeds %.0fms", m.AvgResponseTimeMS, highLatencyMS))
	}
	if m.FailureRate > highFailureRate {
		recs = append(recs, fmt.Sprintf("failure rate %.3f exceeds %.2f; investigate predictor stability", m.FailureRate, highFailureRate))
	}

	weak := make([]string, 0)
	for area, accuracy := range m.AccuracyByFocusArea {
		if accuracy < weakCategoryAccuracy {
			weak = append(weak, string(area))
		}
	}
	sort.Strings(weak)
	if len(weak) > 0 {
		recs = append(recs, fmt.Sprintf("weak focus areas (accuracy < %.2f): %s", weakCategoryAccuracy, strings.Join(weak, ", ")))
	}
	return recs
}

func writeRecommendations(b *strings.Builder, m sample.EvaluationMetrics) {
	recs := Recommendations(m)
	b.WriteString("## Recommendations\n\n")
	if len(recs) == 0 {
		b.WriteString("No issues detected against the deployment thresholds.\n")
		return
	}
	for _, rec := range recs {
		fmt.Fprintf(b, "- %s\n", rec)
	}
}
