package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// sampleSchema holds the ground-truth document schema.
//
//go:embed ground_truth.schema.json
var sampleSchema string

// Finding reports one schema violation in a corpus document.
type Finding struct {
	Path    string
	Index   int // element index inside an array document, -1 for single-sample docs
	Message string
}

// ValidateDocuments checks every corpus document against the ground-truth
// JSON schema and returns all violations. A document that is not valid JSON
// at all is reported as a single finding.
func (s *Store) ValidateDocuments() ([]Finding, error) {
	schema, err := compileSampleSchema()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var findings []Finding
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", name, err)
		}
		findings = append(findings, validateDocument(schema, path, data)...)
	}
	return findings, nil
}

func validateDocument(schema *jsonschema.Schema, path string, data []byte) []Finding {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elements []json.RawMessage
		if err := json.Unmarshal(data, &elements); err != nil {
			return []Finding{{Path: path, Index: -1, Message: err.Error()}}
		}
		var findings []Finding
		for i, element := range elements {
			if msg, ok := validateElement(schema, element); !ok {
				findings = append(findings, Finding{Path: path, Index: i, Message: msg})
			}
		}
		return findings
	}
	if msg, ok := validateElement(schema, data); !ok {
		return []Finding{{Path: path, Index: -1, Message: msg}}
	}
	return nil
}

func validateElement(schema *jsonschema.Schema, data []byte) (string, bool) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err.Error(), false
	}
	if err := schema.Validate(value); err != nil {
		return err.Error(), false
	}
	return "", true
}

func compileSampleSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ground_truth.schema.json", strings.NewReader(sampleSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("ground_truth.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile sample schema: %w", err)
	}
	return schema, nil
}
