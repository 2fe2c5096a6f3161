package cucumber

import (
	"io"
	"testing"

	"github.com/cucumber/godog"
)

func TestMetricsFeatures(t *testing.T) {
	options := godog.Options{
		Format:    "progress",
		Paths:     []string{"features"},
		Output:    io.Discard,
		TestingT:  t,
		Randomize: 0,
	}

	suite := godog.TestSuite{
		Name:                "focuseval-metrics",
		ScenarioInitializer: InitializeScenario,
		Options:             &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("metrics features failed")
	}
}
