package cucumber

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"focuseval/internal/metrics"
	"focuseval/internal/sample"
)

// featureState holds scenario state for metrics feature tests.
type featureState struct {
	results  []sample.SampleResult
	computed sample.EvaluationMetrics
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.results = nil
		state.computed = sample.EvaluationMetrics{}
		return ctx, nil
	})

	ctx.Step(`^a run with (\d+) true positives, (\d+) false positives, (\d+) true negatives and (\d+) false negatives$`, state.aRunWithConfusionCounts)
	ctx.Step(`^an empty run$`, state.anEmptyRun)
	ctx.Step(`^a run where every on-task sample outranks every off-task sample$`, state.aPerfectlyRankedRun)
	ctx.Step(`^the metrics are computed$`, state.theMetricsAreComputed)
	ctx.Step(`^the (accuracy|precision|recall|specificity|f1|auc_roc) is ([0-9.]+)$`, state.theMetricIs)
}

func (s *featureState) aRunWithConfusionCounts(tp, fp, tn, fn int) error {
	add := func(n int, actual, predicted bool) {
		for i := 0; i < n; i++ {
			s.results = append(s.results, sample.NewSampleResult(
				sample.Sample{IsValid: actual, AppName: "App"},
				sample.Prediction{IsValid: predicted, Confidence: 0.8},
				0,
			))
		}
	}
	add(tp, true, true)
	add(fp, false, true)
	add(tn, false, false)
	add(fn, true, false)
	return nil
}

func (s *featureState) anEmptyRun() error {
	s.results = nil
	return nil
}

func (s *featureState) aPerfectlyRankedRun() error {
	for i := 0; i < 4; i++ {
		s.results = append(s.results, sample.NewSampleResult(
			sample.Sample{IsValid: true, AppName: "App"},
			sample.Prediction{IsValid: true, Confidence: 0.9 - float64(i)*0.01},
			0,
		))
		s.results = append(s.results, sample.NewSampleResult(
			sample.Sample{IsValid: false, AppName: "App"},
			sample.Prediction{IsValid: false, Confidence: 0.3 - float64(i)*0.01},
			0,
		))
	}
	return nil
}

func (s *featureState) theMetricsAreComputed() error {
	s.computed = metrics.Compute(s.results, nil, 0)
	return nil
}

func (s *featureState) theMetricIs(name string, want float64) error {
	var got float64
	switch name {
	case "accuracy":
		got = s.computed.Accuracy
	case "precision":
		got = s.computed.Precision
	case "recall":
		got = s.computed.Recall
	case "specificity":
		got = s.computed.Specificity
	case "f1":
		got = s.computed.F1
	case "auc_roc":
		got = s.computed.AUCROC
	default:
		return fmt.Errorf("unknown metric %q", name)
	}
	if math.Abs(got-want) > 1e-9 {
		return fmt.Errorf("%s = %v, want %v", name, got, want)
	}
	return nil
}
