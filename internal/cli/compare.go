package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"focuseval/internal/report"
	"focuseval/internal/runner"
)

func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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

		cmp, err := h.eval.CompareHistory()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read run history: %v\n", err)
			return ExitError
		}
		if len(cmp.Rankings) == 0 {
			fmt.Fprintln(stderr, "No completed runs in history. Run \"focuseval evaluate\" or \"focuseval sweep\" first.")
			return ExitError
		}

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
