package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestSweepCommand(t *testing.T) {
	dir := t.TempDir()
	server := newMockPredictorServer(t, "alpha")
	configPath := writeTestConfig(t, dir, server.URL)
	seedTestCorpus(t, dir, 6)

	var out, errBuf bytes.Buffer
	code := Run([]string{"sweep", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errBuf.String())
	}
	output := out.String()
	for _, want := range []string{"completed for alpha", "# Model Comparison", "Comparison:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCompareCommandRequiresHistory(t *testing.T) {
	dir := t.TempDir()
	server := newMockPredictorServer(t, "alpha")
	configPath := writeTestConfig(t, dir, server.URL)

	var out, errBuf bytes.Buffer
	code := Run([]string{"compare", "--config", configPath}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "No completed runs") {
		t.Errorf("stderr = %s", errBuf.String())
	}
}

func TestCompareCommandAfterEvaluate(t *testing.T) {
	dir := t.TempDir()
	server := newMockPredictorServer(t, "alpha")
	configPath := writeTestConfig(t, dir, server.URL)
	seedTestCorpus(t, dir, 6)

	var out, errBuf bytes.Buffer
	if code := Run([]string{"evaluate", "--config", configPath, "--ui", "plain"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("evaluate exit = %d, stderr: %s", code, errBuf.String())
	}

	out.Reset()
	errBuf.Reset()
	code := Run([]string{"compare", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("compare exit = %d, stderr: %s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "best overall: alpha") {
		t.Errorf("output = %s", out.String())
	}
}
