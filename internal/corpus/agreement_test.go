package corpus

import (
	"math"
	"testing"

	"focuseval/internal/sample"
)

func annotation(id string, isValid bool, annotator string) sample.Sample {
	smp := testSample(id, isValid)
	smp.AnnotatorID = annotator
	return smp
}

// TestAgreementAllAgree verifies 3 doubly-annotated ids in full agreement.
func TestAgreementAllAgree(t *testing.T) {
	samples := []sample.Sample{
		annotation("a", true, "ann-1"), annotation("a", true, "ann-2"),
		annotation("b", false, "ann-1"), annotation("b", false, "ann-2"),
		annotation("c", true, "ann-1"), annotation("c", true, "ann-2"),
	}
	got := Agreement(samples, []string{"a", "b", "c"})
	if got != 1.0 {
		t.Fatalf("expected agreement 1.0, got %v", got)
	}
}

// TestAgreementNoPairs verifies 0.0 when no id has two annotations.
func TestAgreementNoPairs(t *testing.T) {
	samples := []sample.Sample{
		annotation("a", true, "ann-1"),
		annotation("b", false, "ann-1"),
	}
	if got := Agreement(samples, []string{"a", "b"}); got != 0 {
		t.Fatalf("expected agreement 0, got %v", got)
	}
}

// TestAgreementPartial verifies pair counting with a disagreement.
func TestAgreementPartial(t *testing.T) {
	// id "a": 3 annotations, 2 valid + 1 invalid -> 1 agreeing pair of 3.
	samples := []sample.Sample{
		annotation("a", true, "ann-1"),
		annotation("a", true, "ann-2"),
		annotation("a", false, "ann-3"),
	}
	got := Agreement(samples, []string{"a"})
	if math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("expected agreement 1/3, got %v", got)
	}
}

// TestAgreementRestrictsToRequestedIDs verifies out-of-set ids are ignored.
func TestAgreementRestrictsToRequestedIDs(t *testing.T) {
	samples := []sample.Sample{
		annotation("a", true, "ann-1"), annotation("a", false, "ann-2"),
		annotation("b", true, "ann-1"), annotation("b", true, "ann-2"),
	}
	if got := Agreement(samples, []string{"b"}); got != 1.0 {
		t.Fatalf("expected agreement 1.0 over id b only, got %v", got)
	}
}
