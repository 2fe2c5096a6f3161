package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes one YAML document into a Config. Decoding is strict:
// an unknown key in .focuseval.yml fails the parse instead of silently
// falling through to a default, and a second document is rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	switch err := decoder.Decode(&struct{}{}); {
	case err == nil:
		return Config{}, errors.New("parse config: multiple YAML documents are not supported")
	case errors.Is(err, io.EOF):
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
}
