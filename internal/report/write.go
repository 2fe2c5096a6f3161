package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focuseval/internal/sample"
)

// ArtifactPaths locates the two artifacts written for one run.
type ArtifactPaths struct {
	Narrative  string
	Structured string
}

// WriteRun persists the narrative and structured artifacts for one run,
// named deterministically from the model ID and run timestamp.
func (g *Generator) WriteRun(result sample.EvaluationResult) (ArtifactPaths, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return ArtifactPaths{}, fmt.Errorf("create reports dir: %w", err)
	}
	base := artifactBase(result.ModelID, result.StartedAt)
	paths := ArtifactPaths{
		Narrative:  filepath.Join(g.dir, base+".md"),
		Structured: filepath.Join(g.dir, base+".json"),
	}

	if err := os.WriteFile(paths.Narrative, []byte(g.BuildRunReport(result)), 0o644); err != nil {
		return ArtifactPaths{}, fmt.Errorf("write narrative report: %w", err)
	}
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return ArtifactPaths{}, fmt.Errorf("marshal run result: %w", err)
	}
	if err := os.WriteFile(paths.Structured, payload, 0o644); err != nil {
		return ArtifactPaths{}, fmt.Errorf("write structured report: %w", err)
	}
	return paths, nil
}

// WriteComparison persists a comparison artifact pair.
func (g *Generator) WriteComparison(cmp Comparison, at time.Time) (ArtifactPaths, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return ArtifactPaths{}, fmt.Errorf("create reports dir: %w", err)
	}
	base := "comparison_" + at.UTC().Format("20060102T150405Z")
	paths := ArtifactPaths{
		Narrative:  filepath.Join(g.dir, base+".md"),
		Structured: filepath.Join(g.dir, base+".json"),
	}
	if err := os.WriteFile(paths.Narrative, []byte(RenderComparison(cmp)), 0o644); err != nil {
		return ArtifactPaths{}, fmt.Errorf("write comparison report: %w", err)
	}
	payload, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return ArtifactPaths{}, fmt.Errorf("marshal comparison: %w", err)
	}
	if err := os.WriteFile(paths.Structured, payload, 0o644); err != nil {
		return ArtifactPaths{}, fmt.Errorf("write comparison json: %w", err)
	}
	return paths, nil
}

func artifactBase(modelID string, startedAt time.Time) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "-")
	return replacer.Replace(modelID) + "_" + startedAt.UTC().Format("20060102T150405Z")
}
