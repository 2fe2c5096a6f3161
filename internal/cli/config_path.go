package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"focuseval/internal/config"
)

// resolveConfigPath normalizes a config path, defaulting to .focuseval.yml
// in the working directory.
func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = config.DefaultConfigName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}
