package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"focuseval/internal/report"
	"focuseval/internal/runner"
)

func runSweep(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: .focuseval.yml)")
		verbose := fs.Bool("verbose", false, "Enable debug logging")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		h := buildHarness(cfg, stderr, *verbose, runner.Options{})
		defer h.close()

		results, err := h.eval.EvaluateAllModels(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "Sweep aborted: %v\n", err)
			return ExitError
		}
		if len(results) == 0 {
			fmt.Fprintln(stderr, "No model completed an evaluation run.")
			return ExitError
		}
		for _, result := range results {
			printRunSummary(stdout, result, h.eval.Reports().Dir())
			fmt.Fprintln(stdout)
		}

		cmp := h.eval.CompareModels(results)
		fmt.Fprint(stdout, report.RenderComparison(cmp))
		paths, err := h.eval.Reports().WriteComparison(cmp, time.Now())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write comparison: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "\nComparison: %s\n", paths.Narrative)
		return ExitOK
	}
}
