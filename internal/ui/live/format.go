package live

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatLatency renders a millisecond latency for display.
func formatLatency(ms float64) string {
	if ms <= 0 {
		return "n/a"
	}
	if ms >= 1000 {
		return fmt.Sprintf("%.1fs", ms/1000)
	}
	return fmt.Sprintf("%.0fms", ms)
}

// formatSampleID truncates long sample IDs for the table.
func formatSampleID(id string) string {
	const limit = 12
	if len(id) <= limit {
		return id
	}
	return id[:limit-1] + "…"
}

// formatApp normalizes whitespace in app names.
func formatApp(app string) string {
	return strings.Join(strings.Fields(app), " ")
}

// formatOutcome renders the row outcome cell.
func formatOutcome(row SampleRow, noColor bool) string {
	switch {
	case row.Failed:
		return stylize("error", noColor, lipgloss.Color("196"))
	case row.Correct:
		return stylize("correct", noColor, lipgloss.Color("42"))
	default:
		return stylize("incorrect", noColor, lipgloss.Color("220"))
	}
}

// formatLabel renders the predicted/actual label pair.
func formatLabel(predicted, actual, failed bool) string {
	if failed {
		return "-"
	}
	return boolLabel(predicted) + "/" + boolLabel(actual)
}

func boolLabel(v bool) string {
	if v {
		return "focused"
	}
	return "off-task"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
