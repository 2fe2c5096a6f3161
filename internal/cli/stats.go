package cli

import (
	"flag"
	"fmt"
	"io"
	"sort"

	"focuseval/internal/corpus"
	"focuseval/internal/sample"
)

func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: .focuseval.yml)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		store := corpus.NewStore(cfg.Corpus.Dir, nil)
		stats, err := store.Statistics()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read corpus: %v\n", err)
			return ExitError
		}
		agreement, err := store.AnnotatorAgreement(nil)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to compute agreement: %v\n", err)
			return ExitError
		}

		printStats(stdout, stats, agreement)
		return ExitOK
	}
}

func printStats(stdout io.Writer, stats corpus.Statistics, agreement float64) {
	fmt.Fprintf(stdout, "Corpus: %d samples (%d on-task, %d off-task)\n",
		stats.Total, stats.Valid, stats.Invalid)
	fmt.Fprintf(stdout, "Class balance: %.2f\n", stats.ClassBalance)
	fmt.Fprintf(stdout, "Mean annotation confidence: %.2f\n", stats.MeanConfidence)
	fmt.Fprintf(stdout, "Annotator agreement: %.2f\n", agreement)

	if len(stats.ByFocusArea) > 0 {
		fmt.Fprintln(stdout, "\nBy focus area:")
		areas := make([]string, 0, len(stats.ByFocusArea))
		for area := range stats.ByFocusArea {
			areas = append(areas, string(area))
		}
		sort.Strings(areas)
		for _, area := range areas {
			fmt.Fprintf(stdout, "  %-14s %d\n", area, stats.ByFocusArea[sample.FocusArea(area)])
		}
	}
	if len(stats.ByApp) > 0 {
		fmt.Fprintln(stdout, "\nBy application:")
		apps := make([]string, 0, len(stats.ByApp))
		for app := range stats.ByApp {
			apps = append(apps, app)
		}
		sort.Strings(apps)
		for _, app := range apps {
			fmt.Fprintf(stdout, "  %-20s %d\n", app, stats.ByApp[app])
		}
	}
}
