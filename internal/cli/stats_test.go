package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir, "http://localhost:1")
	seedTestCorpus(t, dir, 12)

	var out, errBuf bytes.Buffer
	code := Run([]string{"stats", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errBuf.String())
	}
	output := out.String()
	for _, want := range []string{"Corpus: 12 samples", "Class balance:", "Annotator agreement:", "By focus area:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestStatsCommandEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir, "http://localhost:1")

	var out, errBuf bytes.Buffer
	code := Run([]string{"stats", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Corpus: 0 samples") {
		t.Errorf("output = %s", out.String())
	}
}
