package live

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the sample table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "sample", Width: 14},
		{Title: "app", Width: 18},
		{Title: "pred/actual", Width: 18},
		{Title: "outcome", Width: 10},
		{Title: "conf", Width: 6},
		{Title: "latency", Width: 8},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows, newest last.
func rowsForState(state State, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		conf := "-"
		if !row.Failed {
			conf = fmt.Sprintf("%.2f", row.Confidence)
		}
		rows = append(rows, table.Row{
			formatSampleID(row.SampleID),
			formatApp(row.AppName),
			formatLabel(row.Predicted, row.Actual, row.Failed),
			formatOutcome(row, noColor),
			conf,
			formatLatency(row.LatencyMS),
		})
	}
	return rows
}
