package report

import (
	"fmt"
	"sort"
	"strings"

	"focuseval/internal/sample"
	"focuseval/internal/spec"
)

// Ranking is one model's row in a comparison, ordered by F1 descending.
type Ranking struct {
	ModelID          string  `json:"model_id"`
	RunID            string  `json:"run_id"`
	F1               float64 `json:"f1"`
	Accuracy         float64 `json:"accuracy"`
	CalibrationError float64 `json:"calibration_error"`
	AvgLatencyMS     float64 `json:"avg_latency_ms"`
	Tier             Tier    `json:"tier"`
	CostTier         int     `json:"cost_tier,omitempty"`
	CostAdjustedF1   float64 `json:"cost_adjusted_f1,omitempty"`
}

// Comparison summarizes several runs and recommends a deployment choice.
type Comparison struct {
	Rankings          []Ranking         `json:"rankings"`
	BestOverall       string            `json:"best_overall"`
	Fastest           string            `json:"fastest"`
	BestCalibrated    string            `json:"best_calibrated"`
	MostCostEffective string            `json:"most_cost_effective,omitempty"`
	Tiers             map[Tier][]string `json:"tiers"`
	MeanF1            float64           `json:"mean_f1"`
	MeanLatencyMS     float64           `json:"mean_latency_ms"`
	LocalAvgF1        float64           `json:"local_avg_f1"`
	RemoteAvgF1       float64           `json:"remote_avg_f1"`
}

// BuildComparison ranks runs by F1 and derives the comparison summary. The
// model catalog supplies cost tiers and local/remote kinds; runs for models
// missing from the catalog are ranked but excluded from cost analysis.
func BuildComparison(results []sample.EvaluationResult, models []spec.ModelConfig) Comparison {
	catalog := make(map[string]spec.ModelConfig, len(models))
	for _, model := range models {
		catalog[model.ID] = model
	}

	cmp := Comparison{Tiers: map[Tier][]string{}}
	if len(results) == 0 {
		return cmp
	}

	rankings := make([]Ranking, 0, len(results))
	for _, result := range results {
		m := result.Metrics
		ranking := Ranking{
			ModelID:          result.ModelID,
			RunID:            result.RunID,
			F1:               m.F1,
			Accuracy:         m.Accuracy,
			CalibrationError: m.CalibrationError,
			AvgLatencyMS:     m.AvgResponseTimeMS,
			Tier:             TierFor(m.F1),
		}
		if model, ok := catalog[result.ModelID]; ok && model.CostTier > 0 {
			ranking.CostTier = model.CostTier
			ranking.CostAdjustedF1 = m.F1 / float64(model.CostTier)
		}
		rankings = append(rankings, ranking)
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].F1 > rankings[j].F1
	})
	cmp.Rankings = rankings
	cmp.BestOverall = rankings[0].ModelID

	fastest := rankings[0]
	calibrated := rankings[0]
	bestCostAdjusted := 0.0
	var f1Sum, latencySum float64
	var localF1Sum, remoteF1Sum float64
	localCount, remoteCount := 0, 0
	for _, ranking := range rankings {
		if ranking.AvgLatencyMS < fastest.AvgLatencyMS {
			fastest = ranking
		}
		if ranking.CalibrationError < calibrated.CalibrationError {
			calibrated = ranking
		}
		if ranking.CostAdjustedF1 > bestCostAdjusted {
			bestCostAdjusted = ranking.CostAdjustedF1
			cmp.MostCostEffective = ranking.ModelID
		}
		cmp.Tiers[ranking.Tier] = append(cmp.Tiers[ranking.Tier], ranking.ModelID)
		f1Sum += ranking.F1
		latencySum += ranking.AvgLatencyMS
		switch catalog[ranking.ModelID].Kind {
		case "local":
			localF1Sum += ranking.F1
			localCount++
		case "remote":
			remoteF1Sum += ranking.F1
			remoteCount++
		}
	}
	cmp.Fastest = fastest.ModelID
	cmp.BestCalibrated = calibrated.ModelID
	cmp.MeanF1 = f1Sum / float64(len(rankings))
	cmp.MeanLatencyMS = latencySum / float64(len(rankings))
	if localCount > 0 {
		cmp.LocalAvgF1 = localF1Sum / float64(localCount)
	}
	if remoteCount > 0 {
		cmp.RemoteAvgF1 = remoteF1Sum / float64(remoteCount)
	}
	return cmp
}

// RenderComparison renders the comparison as markdown.
func RenderComparison(cmp Comparison) string {
	var b strings.Builder
	b.WriteString("# Model Comparison\n\n")
	if len(cmp.Rankings) == 0 {
		b.WriteString("No completed runs to compare.\n")
		return b.String()
	}

	b.WriteString("| rank | model | F1 | accuracy | ECE | latency (ms) | tier |\n|---|---|---|---|---|---|---|\n")
	for i, ranking := range cmp.Rankings {
		fmt.Fprintf(&b, "| %d | %s | %.3f | %.3f | %.3f | %.1f | %s |\n",
			i+1, ranking.ModelID, ranking.F1, ranking.Accuracy,
			ranking.CalibrationError, ranking.AvgLatencyMS, ranking.Tier)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "- best overall: %s\n", cmp.BestOverall)
	fmt.Fprintf(&b, "- fastest: %s\n", cmp.Fastest)
	fmt.Fprintf(&b, "- best calibrated: %s\n", cmp.BestCalibrated)
	if cmp.MostCostEffective != "" {
		fmt.Fprintf(&b, "- most cost-effective (F1 / cost tier): %s\n", cmp.MostCostEffective)
	}
	fmt.Fprintf(&b, "- mean F1: %.3f, mean latency: %.1fms\n", cmp.MeanF1, cmp.MeanLatencyMS)
	if cmp.LocalAvgF1 > 0 || cmp.RemoteAvgF1 > 0 {
		fmt.Fprintf(&b, "- local avg F1: %.3f, remote avg F1: %.3f\n", cmp.LocalAvgF1, cmp.RemoteAvgF1)
	}
	return b.String()
}
