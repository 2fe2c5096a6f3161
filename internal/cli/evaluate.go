package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"focuseval/internal/report"
	"focuseval/internal/runner"
	"focuseval/internal/sample"
	"focuseval/internal/ui/live"
)

func runEvaluate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: .focuseval.yml)")
		modelID := fs.String("model", "", "Model to evaluate (default: configured default_model)")
		maxSamples := fs.Int("max-samples", 0, "Override the configured sample limit")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		verbose := fs.Bool("verbose", false, "Enable debug logging")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *maxSamples > 0 {
			cfg.Evaluation.MaxSamples = *maxSamples
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var controller *live.Controller
		opts := runner.Options{}
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			opts.Observer = controller
		}

		h := buildHarness(cfg, stderr, *verbose, opts)
		defer h.close()

		result, err := h.eval.Evaluate(context.Background(), *modelID)
		controller.Wait()
		if err != nil {
			fmt.Fprintf(stderr, "Evaluation failed: %v\n", err)
			return ExitError
		}

		printRunSummary(stdout, result, h.eval.Reports().Dir())
		return ExitOK
	}
}

// printRunSummary writes the completed-run lines shared by evaluate and sweep.
func printRunSummary(stdout io.Writer, result sample.EvaluationResult, reportsDir string) {
	m := result.Metrics
	fmt.Fprintf(stdout, "Run %s completed for %s\n", result.RunID, result.ModelID)
	fmt.Fprintf(stdout, "  samples: %d (%d failures)\n", result.SampleCount, result.FailureCount)
	fmt.Fprintf(stdout, "  accuracy %.3f | precision %.3f | recall %.3f | F1 %.3f\n",
		m.Accuracy, m.Precision, m.Recall, m.F1)
	fmt.Fprintf(stdout, "  tier: %s\n", report.TierFor(m.F1))
	fmt.Fprintf(stdout, "Reports: %s\n", reportsDir)
}
