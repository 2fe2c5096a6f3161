package report

import (
	"strings"
	"testing"
	"time"

	"focuseval/internal/sample"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		f1   float64
		want Tier
	}{
		{0.90, TierProductionReady},
		{0.85, TierProductionReady},
		{0.80, TierAcceptable},
		{0.75, TierAcceptable},
		{0.74, TierNeedsImprovement},
		{0.0, TierNeedsImprovement},
	}
	for _, tc := range cases {
		if got := TierFor(tc.f1); got != tc.want {
			t.Errorf("TierFor(%v) = %s, want %s", tc.f1, got, tc.want)
		}
	}
}

func testRunResult() sample.EvaluationResult {
	return sample.EvaluationResult{
		RunID:     "20260101T120000Z-abcd1234",
		ModelID:   "qwen2.5vl:3b",
		StartedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		Metrics: sample.EvaluationMetrics{
			Accuracy:         0.82,
			Precision:        0.80,
			Recall:           0.85,
			F1:               0.824,
			Specificity:      0.79,
			CalibrationError: 0.08,
			AUCROC:           0.88,
			AccuracyByFocusArea: map[sample.FocusArea]float64{
				sample.FocusWriting: 0.9,
				sample.FocusCoding:  0.8,
			},
			AccuracyByApp: map[string]float64{
				"VS Code": 0.85,
				"Chrome":  0.7,
			},
			AvgResponseTimeMS: 420,
		},
		DurationMS:   61_500,
		SampleCount:  50,
		FailureCount: 2,
	}
}

func TestBuildRunReportContents(t *testing.T) {
	g := NewGenerator(t.TempDir())
	md := g.BuildRunReport(testRunResult())

	for _, want := range []string{
		"# Evaluation Report: qwen2.5vl:3b",
		"Run 20260101T120000Z-abcd1234",
		"Performance tier: **acceptable** (F1 0.824)",
		"| accuracy | 0.820 |",
		"| AUC-ROC | 0.880 |",
		"## Accuracy by focus area",
		"## Accuracy by application",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q\n%s", want, md)
		}
	}
}

func TestBuildRunReportSortsBreakdownTables(t *testing.T) {
	g := NewGenerator(t.TempDir())
	md := g.BuildRunReport(testRunResult())

	coding := strings.Index(md, "| coding |")
	writing := strings.Index(md, "| writing |")
	if coding < 0 || writing < 0 || coding > writing {
		t.Fatalf("focus area rows not sorted: coding at %d, writing at %d", coding, writing)
	}
	chrome := strings.Index(md, "| Chrome |")
	vscode := strings.Index(md, "| VS Code |")
	if chrome < 0 || vscode < 0 || chrome > vscode {
		t.Fatalf("app rows not sorted: Chrome at %d, VS Code at %d", chrome, vscode)
	}
}

func TestBuildTaxonomy(t *testing.T) {
	mk := func(actual, predicted bool, conf float64, app string, area sample.FocusArea) sample.SampleResult {
		return sample.SampleResult{
			Sample:     sample.Sample{IsValid: actual, AppName: app, FocusArea: area},
			Prediction: sample.Prediction{IsValid: predicted, Confidence: conf},
			IsCorrect:  actual == predicted,
		}
	}
	results := []sample.SampleResult{
		mk(true, true, 0.9, "VS Code", sample.FocusCoding),
		mk(false, true, 0.9, "Chrome", sample.FocusOther),   // high-conf FP
		mk(false, true, 0.4, "Chrome", sample.FocusOther),   // low-conf FP
		mk(true, false, 0.8, "VS Code", sample.FocusCoding), // high-conf FN
	}

	tax := buildTaxonomy(results)
	if tax.FalsePositivesByApp["Chrome"] != 2 {
		t.Errorf("FalsePositivesByApp[Chrome] = %d, want 2", tax.FalsePositivesByApp["Chrome"])
	}
	if tax.FalseNegativesByFocusArea[sample.FocusCoding] != 1 {
		t.Errorf("FalseNegativesByFocusArea[coding] = %d, want 1", tax.FalseNegativesByFocusArea[sample.FocusCoding])
	}
	if tax.HighConfidenceErrors != 2 || tax.LowConfidenceErrors != 1 {
		t.Errorf("confidence split = %d high / %d low, want 2/1", tax.HighConfidenceErrors, tax.LowConfidenceErrors)
	}
}

func TestRecommendationsFlagsWeaknesses(t *testing.T) {
	m := sample.EvaluationMetrics{
		Accuracy:          0.6,
		Precision:         0.65,
		Recall:            0.6,
		F1:                0.62,
		CalibrationError:  0.2,
		AvgResponseTimeMS: 2500,
		FailureRate:       0.15,
		AccuracyByFocusArea: map[sample.FocusArea]float64{
			sample.FocusDesign: 0.5,
		},
	}
	recs := Recommendations(m)
	if len(recs) != 7 {
		t.Fatalf("got %d recommendations, want 7: %v", len(recs), recs)
	}
	joined := strings.Join(recs, "\n")
	for _, want := range []string{"too lenient", "too strict", "calibration error", "failure rate", "design"} {
		if !strings.Contains(joined, want) {
			t.Errorf("recommendations missing %q:\n%s", want, joined)
		}
	}
}

func TestRecommendationsCleanRun(t *testing.T) {
	m := sample.EvaluationMetrics{
		Accuracy:          0.9,
		Precision:         0.9,
		Recall:            0.9,
		F1:                0.9,
		CalibrationError:  0.05,
		AvgResponseTimeMS: 300,
	}
	if recs := Recommendations(m); len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %v", recs)
	}
}
