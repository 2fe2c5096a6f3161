package cli

import (
	"io"
	"time"

	"go.uber.org/zap"

	"focuseval/internal/config"
	"focuseval/internal/corpus"
	"focuseval/internal/predictor"
	"focuseval/internal/runner"
	"focuseval/internal/spec"
	"focuseval/internal/warehouse"
)

// harness bundles the wired components behind one command invocation.
type harness struct {
	cfg    spec.Config
	store  *corpus.Store
	eval   *runner.Evaluator
	wh     *warehouse.Warehouse
	logger *zap.Logger
}

// newPredictor builds the predictor boundary; swapped out by command tests.
var newPredictor = func(cfg spec.PredictorConfig) predictor.Predictor {
	return predictor.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
}

// loadConfig resolves and loads the config file.
func loadConfig(configPath string) (spec.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return spec.Config{}, err
	}
	return config.Load(resolved)
}

// buildHarness wires the evaluator stack from a loaded config. The warehouse
// is optional: when configured but unavailable it is skipped with a warning.
func buildHarness(cfg spec.Config, stderr io.Writer, verbose bool, opts runner.Options) *harness {
	logger := newLogger(stderr, verbose)
	store := corpus.NewStore(cfg.Corpus.Dir, logger)

	h := &harness{cfg: cfg, store: store, logger: logger}
	if cfg.Warehouse.Path != "" {
		wh, err := warehouse.Open(cfg.Warehouse.Path)
		if err != nil {
			logger.Warn("warehouse unavailable, continuing without ingestion",
				zap.String("path", cfg.Warehouse.Path), zap.Error(err))
		} else {
			h.wh = wh
			opts.Sink = wh
		}
	}

	h.eval = runner.NewEvaluator(cfg, store, newPredictor(cfg.Predictor), logger, opts)
	return h
}

// close releases harness resources.
func (h *harness) close() {
	if h.wh != nil {
		_ = h.wh.Close()
	}
	_ = h.logger.Sync()
}
