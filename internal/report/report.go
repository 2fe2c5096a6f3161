// Package report renders human- and machine-readable artifacts from completed
// evaluation runs. The generator owns no run state; it only reads results.
package report

import (
	"fmt"
	"sort"
	"strings"

	"focuseval/internal/sample"
)

// Tier buckets a model by F1.
type Tier string

const (
	TierProductionReady  Tier = "production-ready"
	TierAcceptable       Tier = "acceptable"
	TierNeedsImprovement Tier = "needs-improvement"
)

// F1 boundaries for the performance tiers.
const (
	tierProductionF1 = 0.85
	tierAcceptableF1 = 0.75
)

// TierFor buckets an F1 score.
func TierFor(f1 float64) Tier {
	switch {
	case f1 >= tierProductionF1:
		return TierProductionReady
	case f1 >= tierAcceptableF1:
		return TierAcceptable
	default:
		return TierNeedsImprovement
	}
}

// Generator renders and persists report artifacts under an explicit directory.
type Generator struct {
	dir string
}

// NewGenerator creates a report generator rooted at dir.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

// Dir returns the report artifact directory.
func (g *Generator) Dir() string {
	return g.dir
}

// BuildRunReport renders the markdown narrative for one completed run.
func (g *Generator) BuildRunReport(result sample.EvaluationResult) string {
	m := result.Metrics
	var b strings.Builder

	fmt.Fprintf(&b, "# Evaluation Report: %s\n\n", result.ModelID)
	fmt.Fprintf(&b, "Run %s, started %s, %d samples (%d predictor failures) in %.1fs.\n\n",
		result.RunID,
		result.StartedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
		result.SampleCount,
		result.FailureCount,
		result.DurationMS/1000.0)
	fmt.Fprintf(&b, "Performance tier: **%s** (F1 %.3f)\n\n", TierFor(m.F1), m.F1)

	b.WriteString("## Metrics\n\n")
	b.WriteString("| metric | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| accuracy | %.3f |\n", m.Accuracy)
	fmt.Fprintf(&b, "| precision | %.3f |\n", m.Precision)
	fmt.Fprintf(&b, "| recall | %.3f |\n", m.Recall)
	fmt.Fprintf(&b, "| specificity | %.3f |\n", m.Specificity)
	fmt.Fprintf(&b, "| F1 | %.3f |\n", m.F1)
	fmt.Fprintf(&b, "| calibration error (ECE) | %.3f |\n", m.CalibrationError)
	fmt.Fprintf(&b, "| AUC-ROC | %.3f |\n", m.AUCROC)
	fmt.Fprintf(&b, "| confidence/accuracy correlation | %.3f |\n", m.ConfidenceCorr)
	fmt.Fprintf(&b, "| OCR-quality/accuracy correlation | %.3f |\n", m.OCRAccuracyCorr)
	fmt.Fprintf(&b, "| temporal consistency | %.3f |\n", m.TemporalConsistency)
	fmt.Fprintf(&b, "| avg response time | %.1f ms |\n", m.AvgResponseTimeMS)
	fmt.Fprintf(&b, "| failure rate | %.3f |\n", m.FailureRate)
	b.WriteString("\n")

	writeFocusAreaTable(&b, m.AccuracyByFocusArea)
	writeAppTable(&b, m.AccuracyByApp)
	writeTaxonomy(&b, buildTaxonomy(result.Results))
	writeRecommendations(&b, m)

	return b.String()
}

// writeFocusAreaTable renders the per-category accuracy breakdown, sorted by
// key so report output is reproducible.
func writeFocusAreaTable(b *strings.Builder, accuracy map[sample.FocusArea]float64) {
	if len(accuracy) == 0 {
		return
	}
	b.WriteString("## Accuracy by focus area\n\n")
	b.WriteString("| focus area | accuracy |\n|---|---|\n")
	areas := make([]string, 0, len(accuracy))
	for area := range accuracy {
		areas = append(areas, string(area))
	}
	sort.Strings(areas)
	for _, area := range areas {
		fmt.Fprintf(b, "| %s | %.3f |\n", area, accuracy[sample.FocusArea(area)])
	}
	b.WriteString("\n")
}

func writeAppTable(b *strings.Builder, accuracy map[string]float64) {
	if len(accuracy) == 0 {
		return
	}
	b.WriteString("## Accuracy by application\n\n")
	b.WriteString("| application | accuracy |\n|---|---|\n")
	apps := make([]string, 0, len(accuracy))
	for app := range accuracy {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	for _, app := range apps {
		fmt.Fprintf(b, "| %s | %.3f |\n", app, accuracy[app])
	}
	b.WriteString("\n")
}
