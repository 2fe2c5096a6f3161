package metrics

import (
	"math"

	"focuseval/internal/sample"
)

const calibrationBins = 10

// expectedCalibrationError partitions predictions into 10 equal-width
// confidence bins over [0,1] and averages, weighted by bin size, the gap
// between each non-empty bin's midpoint and its empirical accuracy.
func expectedCalibrationError(results []sample.SampleResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var size [calibrationBins]int
	var correct [calibrationBins]int
	for _, r := range results {
		bin := int(r.Prediction.Confidence * calibrationBins)
		if bin < 0 {
			bin = 0
		}
		if bin >= calibrationBins {
			bin = calibrationBins - 1
		}
		size[bin]++
		if r.IsCorrect {
			correct[bin]++
		}
	}

	weighted := 0.0
	for bin := 0; bin < calibrationBins; bin++ {
		if size[bin] == 0 {
			continue
		}
		midpoint := (float64(bin) + 0.5) / calibrationBins
		empirical := float64(correct[bin]) / float64(size[bin])
		weighted += float64(size[bin]) * math.Abs(midpoint-empirical)
	}
	return weighted / float64(len(results))
}
