package config

import "focuseval/internal/spec"

// Defaults applied during normalization.
const (
	DefaultMaxSamples     = 100
	DefaultTimeoutSeconds = 30
	DefaultPollIntervalMS = 500
	DefaultPollAttempts   = 20
	DefaultPredictorURL   = "http://localhost:8765"
	DefaultCorpusDir      = "corpus"
	DefaultReportsDir     = "reports"
	DefaultHistoryFile    = "reports/history.json"
)

func Normalize(cfg *spec.Config) {
	if cfg.Corpus.Dir == "" {
		cfg.Corpus.Dir = DefaultCorpusDir
	}
	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = DefaultReportsDir
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryFile
	}
	if cfg.Predictor.BaseURL == "" {
		cfg.Predictor.BaseURL = DefaultPredictorURL
	}
	if cfg.Predictor.TimeoutSeconds <= 0 {
		cfg.Predictor.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Predictor.SwitchPollIntervalMS <= 0 {
		cfg.Predictor.SwitchPollIntervalMS = DefaultPollIntervalMS
	}
	if cfg.Predictor.SwitchPollAttempts <= 0 {
		cfg.Predictor.SwitchPollAttempts = DefaultPollAttempts
	}
	if cfg.Evaluation.MaxSamples <= 0 {
		cfg.Evaluation.MaxSamples = DefaultMaxSamples
	}
	if cfg.DefaultModel == "" && len(cfg.Models) == 1 {
		cfg.DefaultModel = cfg.Models[0].ID
	}
	for i := range cfg.Models {
		if cfg.Models[i].Kind == "" {
			cfg.Models[i].Kind = "local"
		}
	}
}
