package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"focuseval/internal/sample"
)

// DocumentError records a corpus document that could not be decoded.
type DocumentError struct {
	Path string
	Err  error
}

func (e DocumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e DocumentError) Unwrap() error {
	return e.Err
}

// LoadReport summarizes one load pass: how many documents were read and which
// were skipped. Skipped documents never abort a load.
type LoadReport struct {
	Documents int
	Skipped   []DocumentError
}

// LoadOptions bounds and orders a load.
type LoadOptions struct {
	// MaxCount truncates the result after shuffling; 0 means no limit.
	MaxCount int
	// Shuffle randomizes order before truncation.
	Shuffle bool
	// Rand seeds the shuffle; nil uses a time-seeded source.
	Rand *rand.Rand
}

// Load reads every persisted sample document, concatenates their samples in
// document-name order, then optionally shuffles and truncates.
func (s *Store) Load(opts LoadOptions) ([]sample.Sample, LoadReport, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, LoadReport{}, nil
		}
		return nil, LoadReport{}, fmt.Errorf("read corpus dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var samples []sample.Sample
	report := LoadReport{}
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, report, fmt.Errorf("read document %s: %w", name, err)
		}
		decoded, err := decodeDocument(data)
		if err != nil {
			docErr := DocumentError{Path: path, Err: err}
			report.Skipped = append(report.Skipped, docErr)
			s.logger.Warn("skipping corrupt corpus document",
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		report.Documents++
		samples = append(samples, decoded...)
	}

	if opts.Shuffle {
		r := opts.Rand
		if r == nil {
			r = newTimeSeededRand()
		}
		r.Shuffle(len(samples), func(i, j int) {
			samples[i], samples[j] = samples[j], samples[i]
		})
	}
	if opts.MaxCount > 0 && len(samples) > opts.MaxCount {
		samples = samples[:opts.MaxCount]
	}
	return samples, report, nil
}

// LoadByFocusArea returns the samples annotated with one focus area.
func (s *Store) LoadByFocusArea(area sample.FocusArea) ([]sample.Sample, error) {
	all, _, err := s.Load(LoadOptions{})
	if err != nil {
		return nil, err
	}
	filtered := make([]sample.Sample, 0, len(all))
	for _, smp := range all {
		if smp.FocusArea == area {
			filtered = append(filtered, smp)
		}
	}
	return filtered, nil
}

// LoadByApp returns samples whose app name contains substr, case-insensitive.
func (s *Store) LoadByApp(substr string) ([]sample.Sample, error) {
	all, _, err := s.Load(LoadOptions{})
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(substr)
	filtered := make([]sample.Sample, 0, len(all))
	for _, smp := range all {
		if strings.Contains(strings.ToLower(smp.AppName), needle) {
			filtered = append(filtered, smp)
		}
	}
	return filtered, nil
}

func newTimeSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// decodeDocument accepts either a single sample object or an array of samples.
func decodeDocument(data []byte) ([]sample.Sample, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if trimmed[0] == '[' {
		var batch []sample.Sample
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("decode sample array: %w", err)
		}
		return batch, nil
	}
	var single sample.Sample
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decode sample: %w", err)
	}
	return []sample.Sample{single}, nil
}
