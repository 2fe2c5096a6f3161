package report

import (
	"fmt"
	"sort"
	"strings"

	"focuseval/internal/sample"
)

// highConfidence splits errors into low- and high-confidence buckets.
// High-confidence errors are the dangerous kind: the model is sure and wrong.
const highConfidence = 0.7

// ErrorTaxonomy classifies the incorrect results of one run.
type ErrorTaxonomy struct {
	FalsePositivesByApp       map[string]int           `json:"false_positives_by_app,omitempty"`
	FalseNegativesByFocusArea map[sample.FocusArea]int `json:"false_negatives_by_focus_area,omitempty"`
	LowConfidenceErrors       int                      `json:"low_confidence_errors"`
	HighConfidenceErrors      int                      `json:"high_confidence_errors"`
}

func buildTaxonomy(results []sample.SampleResult) ErrorTaxonomy {
	taxonomy := ErrorTaxonomy{}
	for _, r := range results {
		if r.IsCorrect {
			continue
		}
		if r.Prediction.IsValid && !r.Sample.IsValid {
			if taxonomy.FalsePositivesByApp == nil {
				taxonomy.FalsePositivesByApp = map[string]int{}
			}
			taxonomy.FalsePositivesByApp[r.Sample.AppName]++
		}
		if !r.Prediction.IsValid && r.Sample.IsValid {
			if taxonomy.FalseNegativesByFocusArea == nil {
				taxonomy.FalseNegativesByFocusArea = map[sample.FocusArea]int{}
			}
			taxonomy.FalseNegativesByFocusArea[r.Sample.FocusArea]++
		}
		if r.Prediction.Confidence >= highConfidence {
			taxonomy.HighConfidenceErrors++
		} else {
			taxonomy.LowConfidenceErrors++
		}
	}
	return taxonomy
}

func writeTaxonomy(b *strings.Builder, taxonomy ErrorTaxonomy) {
	if taxonomy.LowConfidenceErrors == 0 && taxonomy.HighConfidenceErrors == 0 {
		return
	}
	b.WriteString("## Error taxonomy\n\n")
	fmt.Fprintf(b, "- low-confidence errors (< %.1f): %d\n", highConfidence, taxonomy.LowConfidenceErrors)
	fmt.Fprintf(b, "- high-confidence errors (>= %.1f): %d\n", highConfidence, taxonomy.HighConfidenceErrors)

	if len(taxonomy.FalsePositivesByApp) > 0 {
		b.WriteString("\nFalse positives by application:\n\n")
		apps := make([]string, 0, len(taxonomy.FalsePositivesByApp))
		for app := range taxonomy.FalsePositivesByApp {
			apps = append(apps, app)
		}
		sort.Strings(apps)
		for _, app := range apps {
			fmt.Fprintf(b, "- %s: %d\n", app, taxonomy.FalsePositivesByApp[app])
		}
	}
	if len(taxonomy.FalseNegativesByFocusArea) > 0 {
		b.WriteString("\nFalse negatives by focus area:\n\n")
		areas := make([]string, 0, len(taxonomy.FalseNegativesByFocusArea))
		for area := range taxonomy.FalseNegativesByFocusArea {
			areas = append(areas, string(area))
		}
		sort.Strings(areas)
		for _, area := range areas {
			fmt.Fprintf(b, "- %s: %d\n", area, taxonomy.FalseNegativesByFocusArea[sample.FocusArea(area)])
		}
	}
	b.WriteString("\n")
}
