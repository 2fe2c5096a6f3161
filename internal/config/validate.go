package config

import (
	"fmt"
	"strings"

	"focuseval/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for structural correctness.
func Validate(cfg *spec.Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	modelIDs := map[string]bool{}
	for i, model := range cfg.Models {
		field := fmt.Sprintf("models[%d]", i)
		if strings.TrimSpace(model.ID) == "" {
			add(field+".id", "is required")
			continue
		}
		if modelIDs[model.ID] {
			add(field+".id", fmt.Sprintf("duplicate model id %q", model.ID))
		}
		modelIDs[model.ID] = true
		if model.Kind != "local" && model.Kind != "remote" {
			add(field+".kind", fmt.Sprintf("must be local or remote, got %q", model.Kind))
		}
		if model.CostTier < 0 {
			add(field+".cost_tier", "must not be negative")
		}
	}

	if cfg.DefaultModel != "" && !modelIDs[cfg.DefaultModel] {
		add("default_model", fmt.Sprintf("unknown model id %q", cfg.DefaultModel))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
