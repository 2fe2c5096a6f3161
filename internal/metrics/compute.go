// Package metrics turns a set of per-sample outcomes into an aggregate
// quality record. Every function here is pure: no I/O, no clock, and all
// formulas are insensitive to input order except temporal consistency, which
// is defined over annotation timestamps.
package metrics

import (
	"time"

	"focuseval/internal/sample"
)

// Compute aggregates an ordered list of sample results, their per-sample
// latencies, and the count of samples the predictor failed to score. An empty
// input yields the zero metrics record without error.
func Compute(results []sample.SampleResult, latencies []time.Duration, failures int) sample.EvaluationMetrics {
	counts := confusionCounts(results)

	m := sample.EvaluationMetrics{
		Accuracy:            counts.accuracy(),
		Precision:           counts.precision(),
		Recall:              counts.recall(),
		Specificity:         counts.specificity(),
		F1:                  counts.f1(),
		CalibrationError:    expectedCalibrationError(results),
		AUCROC:              aucROC(results),
		ConfidenceCorr:      confidenceAccuracyCorrelation(results),
		AvgResponseTimeMS:   averageLatencyMS(latencies),
		FailureRate:         failureRate(len(results), failures),
		AccuracyByFocusArea: accuracyByFocusArea(results),
		AccuracyByApp:       accuracyByApp(results),
		OCRAccuracyCorr:     ocrAccuracyCorrelation(results),
		TemporalConsistency: temporalConsistency(results),
	}
	return m
}

type confusion struct {
	tp, fp, tn, fn int
}

// confusionCounts classifies each result by (predicted, actual) validity.
func confusionCounts(results []sample.SampleResult) confusion {
	var c confusion
	for _, r := range results {
		predicted := r.Prediction.IsValid
		actual := r.Sample.IsValid
		switch {
		case predicted && actual:
			c.tp++
		case predicted && !actual:
			c.fp++
		case !predicted && !actual:
			c.tn++
		default:
			c.fn++
		}
	}
	return c
}

func (c confusion) total() int {
	return c.tp + c.fp + c.tn + c.fn
}

func (c confusion) accuracy() float64 {
	return ratio(c.tp+c.tn, c.total())
}

func (c confusion) precision() float64 {
	return ratio(c.tp, c.tp+c.fp)
}

func (c confusion) recall() float64 {
	return ratio(c.tp, c.tp+c.fn)
}

func (c confusion) specificity() float64 {
	return ratio(c.tn, c.tn+c.fp)
}

func (c confusion) f1() float64 {
	p := c.precision()
	r := c.recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func failureRate(successes, failures int) float64 {
	return ratio(failures, successes+failures)
}

func averageLatencyMS(latencies []time.Duration) float64 {
	if len(latencies) == 0 {
		return 0
	}
	var total time.Duration
	for _, latency := range latencies {
		total += latency
	}
	return float64(total.Microseconds()) / 1000.0 / float64(len(latencies))
}

// ratio divides counts, returning 0 on a zero denominator.
func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
