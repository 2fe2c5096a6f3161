package metrics

import "focuseval/internal/sample"

// accuracyByFocusArea groups results by annotated focus area.
func accuracyByFocusArea(results []sample.SampleResult) map[sample.FocusArea]float64 {
	if len(results) == 0 {
		return nil
	}
	count := map[sample.FocusArea]int{}
	correct := map[sample.FocusArea]int{}
	for _, r := range results {
		count[r.Sample.FocusArea]++
		if r.IsCorrect {
			correct[r.Sample.FocusArea]++
		}
	}
	accuracy := make(map[sample.FocusArea]float64, len(count))
	for area, n := range count {
		accuracy[area] = float64(correct[area]) / float64(n)
	}
	return accuracy
}

// accuracyByApp groups results by source application.
func accuracyByApp(results []sample.SampleResult) map[string]float64 {
	if len(results) == 0 {
		return nil
	}
	count := map[string]int{}
	correct := map[string]int{}
	for _, r := range results {
		count[r.Sample.AppName]++
		if r.IsCorrect {
			correct[r.Sample.AppName]++
		}
	}
	accuracy := make(map[string]float64, len(count))
	for app, n := range count {
		accuracy[app] = float64(correct[app]) / float64(n)
	}
	return accuracy
}
