package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.ModelID != "" {
		line += " | Model: " + state.ModelID
	}
	if state.Phase != "" {
		line += " | " + phaseLabel(state.Phase)
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the outcome counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Done: " + fmtInt(counts.Completed) + "/" + fmtInt(state.Total) +
		" Correct: " + fmtInt(counts.Correct) +
		" Incorrect: " + fmtInt(counts.Incorrect) +
		" Errors: " + fmtInt(counts.Failed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}
