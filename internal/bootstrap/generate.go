// Package bootstrap generates a synthetic labelled corpus so the harness can
// run before any human-annotated samples exist.
package bootstrap

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"focuseval/internal/sample"
)

// AnnotatorID marks synthetic samples so they can be filtered out of
// agreement statistics.
const AnnotatorID = "bootstrap"

const (
	onTaskRatio    = 0.7
	ambiguousRatio = 0.1
	// sampleSpacing keeps consecutive same-app samples inside the
	// temporal-consistency window.
	sampleSpacing = 2 * time.Minute
)

// Generate produces n labelled samples, reproducible under the given seed.
// Roughly 70% are on-task, 10% ambiguous-but-on-task with reduced annotator
// confidence, and the rest off-task.
func Generate(n int, seed int64) []sample.Sample {
	return GenerateAt(n, seed, time.Now().UTC().Truncate(time.Minute))
}

// GenerateAt is Generate with an explicit base timestamp.
func GenerateAt(n int, seed int64, base time.Time) []sample.Sample {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]sample.Sample, 0, n)
	for i := 0; i < n; i++ {
		goal := focusGoals[rng.Intn(len(focusGoals))]
		var (
			sc         scenario
			isValid    bool
			confidence float64
		)
		switch roll := rng.Float64(); {
		case roll < ambiguousRatio:
			sc = ambiguousScenarios[rng.Intn(len(ambiguousScenarios))]
			goal = sc.userFocus
			isValid = true
			confidence = 0.6 + rng.Float64()*0.15
		case roll < ambiguousRatio+onTaskRatio:
			options := focusedScenarios[goal]
			sc = options[rng.Intn(len(options))]
			isValid = true
			confidence = 0.85 + rng.Float64()*0.1
		default:
			sc = distractingScenarios[rng.Intn(len(distractingScenarios))]
			sc.userFocus = goal
			isValid = false
			confidence = 0.85 + rng.Float64()*0.1
		}

		samples = append(samples, sample.Sample{
			ID:          uuid.Must(uuid.NewRandomFromReader(rng)).String(),
			Text:        sc.text,
			AppName:     sc.appName,
			WindowTitle: sc.windowTitle,
			UserFocus:   sc.userFocus,
			IsValid:     isValid,
			Confidence:  confidence,
			FocusArea:   sc.focusArea,
			AnnotatorID: AnnotatorID,
			AnnotatedAt: base.Add(time.Duration(i) * sampleSpacing),
		})
	}
	return samples
}
