package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focuseval/internal/sample"
)

// History persists the ordered list of completed runs in one JSON file.
// The file is rewritten in full on each append; a single writer is assumed.
type History struct {
	path string
}

// NewHistory creates a history backed by the given file path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Path returns the history file location.
func (h *History) Path() string {
	return h.path
}

// Load returns all recorded runs, oldest first. A missing file is an empty
// history, not an error.
func (h *History) Load() ([]sample.EvaluationResult, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read run history: %w", err)
	}
	var runs []sample.EvaluationResult
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("decode run history %s: %w", h.path, err)
	}
	return runs, nil
}

// Append records one completed run at the end of the history.
func (h *History) Append(result sample.EvaluationResult) error {
	runs, err := h.Load()
	if err != nil {
		return err
	}
	runs = append(runs, result)
	payload, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if err := os.WriteFile(h.path, payload, 0o644); err != nil {
		return fmt.Errorf("write run history: %w", err)
	}
	return nil
}

// Latest returns the most recent run per model ID, preserving no particular
// order. Used by comparison over persisted history.
func (h *History) Latest() (map[string]sample.EvaluationResult, error) {
	runs, err := h.Load()
	if err != nil {
		return nil, err
	}
	latest := make(map[string]sample.EvaluationResult, len(runs))
	for _, run := range runs {
		latest[run.ModelID] = run
	}
	return latest, nil
}
