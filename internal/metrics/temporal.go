package metrics

import (
	"sort"
	"time"

	"focuseval/internal/sample"
)

// temporalWindow is the maximum gap between two same-app samples for them to
// count as near-consecutive.
const temporalWindow = 5 * time.Minute

// temporalConsistency measures how often predictions agree on near-consecutive
// samples from the same application. Within each app group, sorted by
// annotation timestamp, every consecutive pair within the window is a
// comparison; the pair is consistent when both predicted labels match.
// Returns 0 when no pair qualifies.
func temporalConsistency(results []sample.SampleResult) float64 {
	byApp := map[string][]sample.SampleResult{}
	for _, r := range results {
		byApp[r.Sample.AppName] = append(byApp[r.Sample.AppName], r)
	}

	comparisons := 0
	consistent := 0
	for _, group := range byApp {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Sample.AnnotatedAt.Before(group[j].Sample.AnnotatedAt)
		})
		for i := 1; i < len(group); i++ {
			gap := group[i].Sample.AnnotatedAt.Sub(group[i-1].Sample.AnnotatedAt)
			if gap > temporalWindow {
				continue
			}
			comparisons++
			if group[i].Prediction.IsValid == group[i-1].Prediction.IsValid {
				consistent++
			}
		}
	}
	if comparisons == 0 {
		return 0
	}
	return float64(consistent) / float64(comparisons)
}
