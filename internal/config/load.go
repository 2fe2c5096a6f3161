package config

import (
	"fmt"
	"os"
	"path/filepath"

	"focuseval/internal/spec"
)

// DefaultConfigName is the config file looked up next to the working directory.
const DefaultConfigName = ".focuseval.yml"

// Load reads, parses, normalizes, and validates a config file. Relative paths
// inside the config are resolved against the config file's directory so that
// no component reads an ambient global root.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	baseDir := filepath.Dir(path)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	ResolvePaths(&cfg, baseDir)
	return cfg, nil
}

// ResolvePaths anchors relative config paths at baseDir.
func ResolvePaths(cfg *spec.Config, baseDir string) {
	cfg.Corpus.Dir = resolve(baseDir, cfg.Corpus.Dir)
	cfg.Reports.Dir = resolve(baseDir, cfg.Reports.Dir)
	cfg.History.Path = resolve(baseDir, cfg.History.Path)
	cfg.Warehouse.Path = resolve(baseDir, cfg.Warehouse.Path)
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
