package corpus

import "focuseval/internal/sample"

// Statistics summarizes the persisted corpus.
type Statistics struct {
	Total          int                      `json:"total"`
	Valid          int                      `json:"valid"`
	Invalid        int                      `json:"invalid"`
	ClassBalance   float64                  `json:"class_balance"`
	ByFocusArea    map[sample.FocusArea]int `json:"by_focus_area"`
	ByApp          map[string]int           `json:"by_app"`
	ByAnnotator    map[string]int           `json:"by_annotator"`
	MeanConfidence float64                  `json:"mean_confidence"`
}

// Statistics computes corpus-level counts and the class balance. A low class
// balance flags label imbalance that would make raw accuracy misleading.
func (s *Store) Statistics() (Statistics, error) {
	samples, _, err := s.Load(LoadOptions{})
	if err != nil {
		return Statistics{}, err
	}
	return ComputeStatistics(samples), nil
}

// ComputeStatistics aggregates statistics over an in-memory sample set.
func ComputeStatistics(samples []sample.Sample) Statistics {
	stats := Statistics{
		ByFocusArea: map[sample.FocusArea]int{},
		ByApp:       map[string]int{},
		ByAnnotator: map[string]int{},
	}
	confidenceSum := 0.0
	for _, smp := range samples {
		stats.Total++
		if smp.IsValid {
			stats.Valid++
		} else {
			stats.Invalid++
		}
		stats.ByFocusArea[smp.FocusArea]++
		stats.ByApp[smp.AppName]++
		stats.ByAnnotator[smp.AnnotatorID]++
		confidenceSum += smp.Confidence
	}
	stats.ClassBalance = classBalance(stats.Valid, stats.Invalid)
	if stats.Total > 0 {
		stats.MeanConfidence = confidenceSum / float64(stats.Total)
	}
	return stats
}

// classBalance is min/max of the two label counts: 0 when either class is
// empty, 1.0 when perfectly balanced.
func classBalance(valid, invalid int) float64 {
	if valid == 0 || invalid == 0 {
		return 0
	}
	minCount, maxCount := valid, invalid
	if minCount > maxCount {
		minCount, maxCount = maxCount, minCount
	}
	return float64(minCount) / float64(maxCount)
}
