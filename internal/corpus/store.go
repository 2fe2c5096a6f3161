package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"focuseval/internal/sample"
)

// Store persists ground-truth samples as JSON documents under a single
// directory. Each document holds either one sample or an ordered list of
// samples. The store is the exclusive owner of persisted samples;
// single-process, single-writer usage is assumed.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a store rooted at an explicit directory.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the corpus root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes one sample as a single-sample document named after its ID.
func (s *Store) Save(smp sample.Sample) error {
	if strings.TrimSpace(smp.ID) == "" {
		return fmt.Errorf("save sample: id is required")
	}
	name := "sample_" + sanitizeName(smp.ID) + ".json"
	return s.writeDocument(name, smp)
}

// SaveBatch writes a list of samples to one named batch document.
func (s *Store) SaveBatch(samples []sample.Sample, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("save batch: name is required")
	}
	return s.writeDocument(sanitizeName(name)+".json", samples)
}

func (s *Store) writeDocument(name string, payload any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// sanitizeName keeps document names filesystem-safe.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(name)
}
