package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCommandOK(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir, "http://localhost:1")
	seedTestCorpus(t, dir, 5)

	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Config OK") || !strings.Contains(out.String(), "Corpus OK") {
		t.Errorf("output = %s", out.String())
	}
}

func TestValidateCommandFlagsBadDocument(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir, "http://localhost:1")
	corpusDir := filepath.Join(dir, "corpus")
	if err := os.MkdirAll(corpusDir, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := []byte(`{"id": "x", "confidence": 4.2}`)
	if err := os.WriteFile(filepath.Join(corpusDir, "sample_x.json"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "failed validation") {
		t.Errorf("stderr = %s", errBuf.String())
	}
}

func TestValidateCommandBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".focuseval.yml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "Validation failed") {
		t.Errorf("stderr = %s", errBuf.String())
	}
}

func TestResolveUIMode(t *testing.T) {
	prev := isTerminal
	defer func() { isTerminal = prev }()

	isTerminal = func(io.Writer) bool { return false }
	if d, err := resolveUIMode("auto", nil); err != nil || d.useLive {
		t.Errorf("auto without tty = %+v, %v", d, err)
	}
	if d, err := resolveUIMode("live", nil); err != nil || d.useLive || d.warning == "" {
		t.Errorf("live without tty = %+v, %v", d, err)
	}
	if d, err := resolveUIMode("plain", nil); err != nil || d.useLive {
		t.Errorf("plain = %+v, %v", d, err)
	}
	if _, err := resolveUIMode("fancy", nil); err == nil {
		t.Error("expected error for unknown mode")
	}
}
