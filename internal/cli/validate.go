package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"focuseval/internal/corpus"
)

// runValidate builds the handler for the validate command. It checks both
// the config file and every corpus document against the sample schema.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: .focuseval.yml)")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		store := corpus.NewStore(cfg.Corpus.Dir, nil)
		findings, err := store.ValidateDocuments()
		if err != nil {
			fmt.Fprintf(stderr, "Corpus validation failed: %v\n", err)
			return ExitError
		}
		if len(findings) > 0 {
			for _, finding := range findings {
				if finding.Index >= 0 {
					fmt.Fprintf(stderr, "%s[%d]: %s\n", finding.Path, finding.Index, finding.Message)
				} else {
					fmt.Fprintf(stderr, "%s: %s\n", finding.Path, finding.Message)
				}
			}
			fmt.Fprintf(stderr, "%d corpus document(s) failed validation\n", len(findings))
			return ExitError
		}
		fmt.Fprintln(stdout, "Corpus OK")
		return ExitOK
	}
}
