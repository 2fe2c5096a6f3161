package metrics

import (
	"math"
	"math/rand"
	"testing"

	"focuseval/internal/sample"
)

// TestAUCPerfectRanking verifies AUC 1.0 when every positive outranks every negative.
func TestAUCPerfectRanking(t *testing.T) {
	var results []sample.SampleResult
	for i := 0; i < 5; i++ {
		results = append(results, result(true, true, 0.9-float64(i)*0.01))
	}
	for i := 0; i < 5; i++ {
		results = append(results, result(false, false, 0.4-float64(i)*0.01))
	}
	got := aucROC(results)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected AUC 1.0, got %v", got)
	}
}

// TestAUCInvertedRanking verifies AUC 0 when ranking is exactly backwards.
func TestAUCInvertedRanking(t *testing.T) {
	results := []sample.SampleResult{
		result(false, true, 0.9),
		result(false, true, 0.8),
		result(true, false, 0.2),
		result(true, false, 0.1),
	}
	got := aucROC(results)
	if math.Abs(got) > 1e-9 {
		t.Fatalf("expected AUC 0, got %v", got)
	}
}

// TestAUCDegenerateClasses verifies 0.5 when one class is absent and 0 for
// an empty input.
func TestAUCDegenerateClasses(t *testing.T) {
	onlyPositives := []sample.SampleResult{result(true, true, 0.9), result(true, true, 0.3)}
	if got := aucROC(onlyPositives); got != 0.5 {
		t.Fatalf("expected degenerate AUC 0.5, got %v", got)
	}
	onlyNegatives := []sample.SampleResult{result(false, false, 0.2)}
	if got := aucROC(onlyNegatives); got != 0.5 {
		t.Fatalf("expected degenerate AUC 0.5, got %v", got)
	}
	if got := aucROC(nil); got != 0 {
		t.Fatalf("expected AUC 0 for empty input, got %v", got)
	}
}

// TestAUCRandomRankingNearHalf verifies the statistical property that AUC
// approaches 0.5 when confidences are independent of the true labels.
func TestAUCRandomRankingNearHalf(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	trials := 50
	perTrial := 200
	sum := 0.0
	for trial := 0; trial < trials; trial++ {
		results := make([]sample.SampleResult, 0, perTrial)
		for i := 0; i < perTrial; i++ {
			results = append(results, result(i%2 == 0, true, r.Float64()))
		}
		sum += aucROC(results)
	}
	mean := sum / float64(trials)
	if math.Abs(mean-0.5) > 0.02 {
		t.Fatalf("expected mean AUC near 0.5, got %v", mean)
	}
}
