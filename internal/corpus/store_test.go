package corpus

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"focuseval/internal/sample"
)

func testSample(id string, isValid bool) sample.Sample {
	return sample.Sample{
		ID:          id,
		Text:        "def insert(self, value):",
		AppName:     "Visual Studio Code",
		WindowTitle: "data_structures.py",
		UserFocus:   "Studying Computer Science",
		IsValid:     isValid,
		Confidence:  0.9,
		FocusArea:   sample.FocusCoding,
		AnnotatorID: "annotator-1",
		AnnotatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

// TestSaveLoadRoundTrip verifies N saved samples load back with the same ID set.
func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	want := map[string]bool{}
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("rt-%d", i)
		want[id] = true
		if err := store.Save(testSample(id, i%2 == 0)); err != nil {
			t.Fatalf("save sample: %v", err)
		}
	}

	loaded, report, err := store.Load(LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(loaded))
	}
	if report.Documents != 5 || len(report.Skipped) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for _, smp := range loaded {
		if !want[smp.ID] {
			t.Fatalf("unexpected sample id %s", smp.ID)
		}
		delete(want, smp.ID)
	}
	if len(want) != 0 {
		t.Fatalf("missing sample ids: %v", want)
	}
}

// TestLoadBatchDocument verifies array documents are accepted.
func TestLoadBatchDocument(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	batch := []sample.Sample{testSample("b1", true), testSample("b2", false)}
	if err := store.SaveBatch(batch, "batch one"); err != nil {
		t.Fatalf("save batch: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), "batch_one.json")); err != nil {
		t.Fatalf("expected sanitized batch document: %v", err)
	}

	loaded, _, err := store.Load(LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(loaded))
	}
}

// TestLoadSkipsCorruptDocuments verifies corrupt files are collected, not fatal.
func TestLoadSkipsCorruptDocuments(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())
	if err := store.Save(testSample("ok-1", true)); err != nil {
		t.Fatalf("save sample: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt doc: %v", err)
	}

	loaded, report, err := store.Load(LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(loaded))
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("expected 1 skipped document, got %d", len(report.Skipped))
	}
}

// TestLoadShuffleAndTruncate verifies truncation happens after shuffling.
func TestLoadShuffleAndTruncate(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	batch := make([]sample.Sample, 0, 20)
	for i := 0; i < 20; i++ {
		batch = append(batch, testSample(fmt.Sprintf("s-%02d", i), true))
	}
	if err := store.SaveBatch(batch, "all"); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	loaded, _, err := store.Load(LoadOptions{MaxCount: 5, Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(loaded))
	}

	again, _, err := store.Load(LoadOptions{MaxCount: 5, Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	for i := range loaded {
		if loaded[i].ID != again[i].ID {
			t.Fatalf("expected deterministic shuffle under fixed seed")
		}
	}
}

// TestLoadMissingDirIsEmpty verifies a missing corpus dir loads as empty.
func TestLoadMissingDirIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	loaded, report, err := store.Load(LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 0 || report.Documents != 0 {
		t.Fatalf("expected empty load, got %d samples", len(loaded))
	}
}

// TestLoadByAppAndFocusArea verifies the convenience filters.
func TestLoadByAppAndFocusArea(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	code := testSample("f1", true)
	design := testSample("f2", true)
	design.AppName = "Figma"
	design.FocusArea = sample.FocusDesign
	if err := store.SaveBatch([]sample.Sample{code, design}, "mixed"); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	byApp, err := store.LoadByApp("figma")
	if err != nil {
		t.Fatalf("load by app: %v", err)
	}
	if len(byApp) != 1 || byApp[0].ID != "f2" {
		t.Fatalf("unexpected app filter result: %+v", byApp)
	}

	byArea, err := store.LoadByFocusArea(sample.FocusCoding)
	if err != nil {
		t.Fatalf("load by focus area: %v", err)
	}
	if len(byArea) != 1 || byArea[0].ID != "f1" {
		t.Fatalf("unexpected focus area filter result: %+v", byArea)
	}
}
