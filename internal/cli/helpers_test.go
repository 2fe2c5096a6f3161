package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focuseval/internal/bootstrap"
	"focuseval/internal/corpus"
)

// writeTestConfig writes a minimal valid config into dir and returns its path.
func writeTestConfig(t *testing.T, dir, baseURL string) string {
	t.Helper()
	content := fmt.Sprintf(`version: 1
corpus:
  dir: corpus
reports:
  dir: reports
history:
  path: history.json
predictor:
  base_url: %q
  timeout_seconds: 2
  switch_poll_interval_ms: 1
  switch_poll_attempts: 3
evaluation:
  max_samples: 50
models:
  - id: alpha
    kind: local
    cost_tier: 1
default_model: alpha
`, baseURL)
	path := filepath.Join(dir, ".focuseval.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// seedTestCorpus fills the corpus dir referenced by the config with
// deterministic synthetic samples.
func seedTestCorpus(t *testing.T, dir string, count int) {
	t.Helper()
	store := corpus.NewStore(filepath.Join(dir, "corpus"), nil)
	samples := bootstrap.GenerateAt(count, 11, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	if err := store.SaveBatch(samples, "seed"); err != nil {
		t.Fatalf("seed corpus: %v", err)
	}
}
