package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"focuseval/internal/bootstrap"
	"focuseval/internal/corpus"
)

func runBootstrap(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: .focuseval.yml)")
		count := fs.Int("count", 50, "Number of synthetic samples to generate")
		seed := fs.Int64("seed", 0, "Random seed (default: current time)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *count <= 0 {
			fmt.Fprintln(stderr, "--count must be positive")
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		effectiveSeed := *seed
		if effectiveSeed == 0 {
			effectiveSeed = time.Now().UnixNano()
		}
		samples := bootstrap.Generate(*count, effectiveSeed)

		store := corpus.NewStore(cfg.Corpus.Dir, nil)
		batchName := fmt.Sprintf("bootstrap_%s", time.Now().UTC().Format("20060102T150405Z"))
		if err := store.SaveBatch(samples, batchName); err != nil {
			fmt.Fprintf(stderr, "Failed to write corpus batch: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %d synthetic samples to %s (seed %d)\n",
			len(samples), cfg.Corpus.Dir, effectiveSeed)
		return ExitOK
	}
}
