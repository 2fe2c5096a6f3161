package metrics

import (
	"sort"

	"focuseval/internal/sample"
)

// aucROC computes the area under the ROC curve by a single sweep over results
// sorted by predicted confidence, descending. At each step the running
// TPR/FPR point advances and the area accumulates as ΔFPR × current TPR,
// which reproduces the rank-statistic definition of AUC without explicit
// thresholds. An empty input yields 0; a non-empty input missing one class
// yields 0.5.
func aucROC(results []sample.SampleResult) float64 {
	if len(results) == 0 {
		return 0
	}
	positives := 0
	negatives := 0
	for _, r := range results {
		if r.Sample.IsValid {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return 0.5
	}

	ranked := make([]sample.SampleResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Prediction.Confidence > ranked[j].Prediction.Confidence
	})

	area := 0.0
	tp, fp := 0, 0
	prevFPR := 0.0
	for _, r := range ranked {
		if r.Sample.IsValid {
			tp++
		} else {
			fp++
		}
		tpr := float64(tp) / float64(positives)
		fpr := float64(fp) / float64(negatives)
		area += (fpr - prevFPR) * tpr
		prevFPR = fpr
	}
	return area
}
