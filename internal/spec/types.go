package spec

// Config is the root schema of .focuseval.yml.
type Config struct {
	Version      int             `yaml:"version"`
	Corpus       CorpusConfig    `yaml:"corpus"`
	Reports      ReportsConfig   `yaml:"reports"`
	History      HistoryConfig   `yaml:"history"`
	Warehouse    WarehouseConfig `yaml:"warehouse"`
	Predictor    PredictorConfig `yaml:"predictor"`
	Evaluation   EvalConfig      `yaml:"evaluation"`
	Models       []ModelConfig   `yaml:"models"`
	DefaultModel string          `yaml:"default_model"`
}

// CorpusConfig locates the ground-truth document directory.
type CorpusConfig struct {
	Dir string `yaml:"dir"`
}

// ReportsConfig locates the report artifact directory.
type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

// HistoryConfig locates the append-only run history file.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// WarehouseConfig locates the optional DuckDB analytics database.
// An empty path disables ingestion.
type WarehouseConfig struct {
	Path string `yaml:"path"`
}

// PredictorConfig describes the predictor service boundary.
type PredictorConfig struct {
	BaseURL              string `yaml:"base_url"`
	TimeoutSeconds       int    `yaml:"timeout_seconds"`
	SwitchPollIntervalMS int    `yaml:"switch_poll_interval_ms"`
	SwitchPollAttempts   int    `yaml:"switch_poll_attempts"`
}

// EvalConfig bounds a single evaluation run.
type EvalConfig struct {
	MaxSamples int  `yaml:"max_samples"`
	Shuffle    bool `yaml:"shuffle"`
}

// ModelConfig is one entry of the candidate model catalog.
// Kind is "local" or "remote"; CostTier is an ordinal price bucket
// (1 = cheapest, 0 = unknown).
type ModelConfig struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"`
	CostTier int    `yaml:"cost_tier"`
}
