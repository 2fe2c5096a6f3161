package metrics

import (
	"math"

	"focuseval/internal/sample"
)

// confidenceAccuracyCorrelation is the Pearson correlation between raw
// prediction confidences and the binary correctness indicator.
func confidenceAccuracyCorrelation(results []sample.SampleResult) float64 {
	confidences := make([]float64, 0, len(results))
	correctness := make([]float64, 0, len(results))
	for _, r := range results {
		confidences = append(confidences, r.Prediction.Confidence)
		correctness = append(correctness, indicator(r.IsCorrect))
	}
	return pearson(confidences, correctness)
}

// ocrAccuracyCorrelation correlates OCR confidence with correctness over the
// subset of samples carrying an OCR confidence score.
func ocrAccuracyCorrelation(results []sample.SampleResult) float64 {
	ocr := make([]float64, 0, len(results))
	correctness := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Sample.OCRConfidence == nil {
			continue
		}
		ocr = append(ocr, *r.Sample.OCRConfidence)
		correctness = append(correctness, indicator(r.IsCorrect))
	}
	return pearson(ocr, correctness)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// pearson computes the standard Pearson correlation over equal-length series,
// returning 0 for fewer than 2 points or zero variance in either series.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
