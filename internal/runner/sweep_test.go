package runner

import (
	"context"
	"testing"
)

func TestEvaluateAllModelsSkipsFailures(t *testing.T) {
	cfg := testConfig(t)
	seedCorpus(t, cfg.Corpus.Dir, 2)
	pred := newFakePredictor("alpha")
	// beta never becomes ready, so its run fails and is skipped.
	pred.ready["beta"] = false
	e := newTestEvaluator(t, cfg, pred, Options{})

	results, err := e.EvaluateAllModels(context.Background())
	if err != nil {
		t.Fatalf("EvaluateAllModels: %v", err)
	}
	if len(results) != 1 || results[0].ModelID != "alpha" {
		t.Fatalf("results = %+v, want one alpha run", results)
	}
}

func TestEvaluateAllModelsComparison(t *testing.T) {
	cfg := testConfig(t)
	seedCorpus(t, cfg.Corpus.Dir, 2)
	pred := newFakePredictor("alpha")
	pred.ready["beta"] = true
	e := newTestEvaluator(t, cfg, pred, Options{})

	results, err := e.EvaluateAllModels(context.Background())
	if err != nil {
		t.Fatalf("EvaluateAllModels: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	cmp := e.CompareModels(results)
	if len(cmp.Rankings) != 2 {
		t.Fatalf("rankings = %d, want 2", len(cmp.Rankings))
	}
	if cmp.MostCostEffective != "alpha" {
		t.Errorf("MostCostEffective = %s, want alpha (equal F1, cheaper tier)", cmp.MostCostEffective)
	}
}

func TestCompareHistoryUsesLatestRuns(t *testing.T) {
	cfg := testConfig(t)
	seedCorpus(t, cfg.Corpus.Dir, 2)
	pred := newFakePredictor("alpha")
	pred.ready["beta"] = true
	e := newTestEvaluator(t, cfg, pred, Options{})

	if _, err := e.EvaluateAllModels(context.Background()); err != nil {
		t.Fatalf("EvaluateAllModels: %v", err)
	}

	cmp, err := e.CompareHistory()
	if err != nil {
		t.Fatalf("CompareHistory: %v", err)
	}
	if len(cmp.Rankings) != 2 {
		t.Fatalf("rankings = %d, want 2", len(cmp.Rankings))
	}
}
