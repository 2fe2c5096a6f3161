// Package runner orchestrates evaluation runs: corpus load, model switch,
// sequential prediction loop, metric aggregation, and artifact persistence.
package runner

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"focuseval/internal/corpus"
	"focuseval/internal/metrics"
	"focuseval/internal/predictor"
	"focuseval/internal/report"
	"focuseval/internal/sample"
	"focuseval/internal/spec"
)

// RunSink receives completed runs for analytics storage. Ingestion is
// best-effort: a sink error is logged, never fatal to the run.
type RunSink interface {
	IngestRun(ctx context.Context, result sample.EvaluationResult) error
}

// Options carries the optional collaborators of an Evaluator.
type Options struct {
	Observer RunObserver
	Sink     RunSink
	RunID    func() (string, error)
	Now      func() time.Time
}

// Evaluator runs one model over the ground-truth corpus at a time. The
// predictor's active model is process-wide state, so concurrent runs are
// rejected rather than interleaved.
type Evaluator struct {
	cfg      spec.Config
	store    *corpus.Store
	pred     predictor.Predictor
	reports  *report.Generator
	history  *History
	logger   *zap.Logger
	observer RunObserver
	sink     RunSink
	runID    func() (string, error)
	now      func() time.Time

	busy   atomic.Bool
	status atomic.Pointer[Status]
}

// NewEvaluator wires an evaluator from validated configuration.
func NewEvaluator(cfg spec.Config, store *corpus.Store, pred predictor.Predictor, logger *zap.Logger, opts Options) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Evaluator{
		cfg:      cfg,
		store:    store,
		pred:     pred,
		reports:  report.NewGenerator(cfg.Reports.Dir),
		history:  NewHistory(cfg.History.Path),
		logger:   logger,
		observer: opts.Observer,
		sink:     opts.Sink,
		runID:    opts.RunID,
		now:      opts.Now,
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	if e.runID == nil {
		e.runID = NewRunID
	}
	if e.now == nil {
		e.now = time.Now
	}
	e.status.Store(&Status{State: StateIdle})
	return e
}

// Status returns the latest progress snapshot. Safe for concurrent use.
func (e *Evaluator) Status() Status {
	return *e.status.Load()
}

// Reports exposes the report generator sharing the evaluator's artifact dir.
func (e *Evaluator) Reports() *report.Generator {
	return e.reports
}

// History exposes the evaluator's run history.
func (e *Evaluator) History() *History {
	return e.history
}

// Evaluate runs the model with the given ID (the configured default when
// empty) over the corpus and returns the completed result. Returns ErrBusy
// if a run is already in progress.
func (e *Evaluator) Evaluate(ctx context.Context, modelID string) (sample.EvaluationResult, error) {
	if modelID == "" {
		modelID = e.cfg.DefaultModel
	}
	if !e.busy.CompareAndSwap(false, true) {
		return sample.EvaluationResult{}, ErrBusy
	}
	defer e.busy.Store(false)

	result, err := e.run(ctx, modelID)
	if err != nil {
		e.publish(Status{State: StateFailed, ModelID: modelID, LastError: err.Error()})
		e.observer.OnRunEnd(sample.EvaluationResult{}, err)
		return sample.EvaluationResult{}, err
	}
	e.publish(Status{State: StateIdle, ModelID: modelID, Completed: result.SampleCount, Total: result.SampleCount})
	e.observer.OnRunEnd(result, nil)
	return result, nil
}

func (e *Evaluator) run(ctx context.Context, modelID string) (sample.EvaluationResult, error) {
	e.setState(StateLoading, modelID, 0, 0)

	samples, loadReport, err := e.store.Load(corpus.LoadOptions{
		MaxCount: e.cfg.Evaluation.MaxSamples,
		Shuffle:  e.cfg.Evaluation.Shuffle,
	})
	if err != nil {
		return sample.EvaluationResult{}, fmt.Errorf("load corpus: %w", err)
	}
	if len(loadReport.Skipped) > 0 {
		e.logger.Warn("corpus documents skipped",
			zap.Int("skipped", len(loadReport.Skipped)),
			zap.Int("documents", loadReport.Documents))
	}
	if len(samples) == 0 {
		return sample.EvaluationResult{}, ErrInsufficientData
	}

	runID, err := e.runID()
	if err != nil {
		return sample.EvaluationResult{}, fmt.Errorf("generate run id: %w", err)
	}

	restore, err := e.ensureModel(ctx, modelID)
	if err != nil {
		return sample.EvaluationResult{}, err
	}
	defer restore()

	e.observer.OnRunStart(runID, modelID, len(samples))
	e.setState(StateRunning, modelID, 0, len(samples))
	startedAt := e.now()

	results := make([]sample.SampleResult, 0, len(samples))
	latencies := make([]time.Duration, 0, len(samples))
	failures := 0
	for i, smp := range samples {
		if err := ctx.Err(); err != nil {
			return sample.EvaluationResult{}, err
		}
		begin := e.now()
		prediction, err := e.pred.Analyze(ctx, smp)
		latency := e.now().Sub(begin)
		if err != nil {
			failures++
			e.logger.Warn("sample analysis failed",
				zap.String("sample_id", smp.ID), zap.Error(err))
			e.observer.OnSampleDone(i, sample.SampleResult{Sample: smp}, err)
		} else {
			scored := sample.NewSampleResult(smp, prediction, latency)
			results = append(results, scored)
			latencies = append(latencies, latency)
			e.observer.OnSampleDone(i, scored, nil)
		}
		e.setState(StateRunning, modelID, i+1, len(samples))
	}

	e.setState(StateAggregating, modelID, len(samples), len(samples))
	finishedAt := e.now()
	result := sample.EvaluationResult{
		RunID:        runID,
		ModelID:      modelID,
		Metrics:      metrics.Compute(results, latencies, failures),
		StartedAt:    startedAt,
		DurationMS:   float64(finishedAt.Sub(startedAt).Microseconds()) / 1000.0,
		SampleCount:  len(samples),
		FailureCount: failures,
		Results:      results,
	}

	e.setState(StateReporting, modelID, len(samples), len(samples))
	if err := e.history.Append(result); err != nil {
		return sample.EvaluationResult{}, fmt.Errorf("append run history: %w", err)
	}
	paths, err := e.reports.WriteRun(result)
	if err != nil {
		return sample.EvaluationResult{}, fmt.Errorf("write report artifacts: %w", err)
	}
	if e.sink != nil {
		if err := e.sink.IngestRun(ctx, result); err != nil {
			e.logger.Warn("warehouse ingestion failed", zap.String("run_id", runID), zap.Error(err))
		}
	}

	e.logger.Info("evaluation run complete",
		zap.String("run_id", runID),
		zap.String("model", modelID),
		zap.Int("samples", result.SampleCount),
		zap.Int("failures", failures),
		zap.Float64("f1", result.Metrics.F1),
		zap.String("report", paths.Narrative))
	return result, nil
}

// ensureModel switches the predictor to modelID when a different model is
// active. The returned cleanup restores the previous model and runs on both
// success and failure paths, so a crashed run never leaves the predictor on
// an unexpected model.
func (e *Evaluator) ensureModel(ctx context.Context, modelID string) (func(), error) {
	active, err := e.pred.ActiveModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active model: %w", err)
	}
	if active == modelID {
		return func() {}, nil
	}

	e.setState(StateSwitchingModel, modelID, 0, 0)
	if err := e.switchAndWait(ctx, modelID); err != nil {
		return nil, err
	}

	previous := active
	return func() {
		restoreCtx, cancel := context.WithTimeout(context.Background(), e.switchBudget())
		defer cancel()
		if err := e.switchAndWait(restoreCtx, previous); err != nil {
			e.logger.Warn("failed to restore previous model",
				zap.String("model", previous), zap.Error(err))
		}
	}, nil
}

func (e *Evaluator) switchAndWait(ctx context.Context, modelID string) error {
	if err := e.pred.SwitchModel(ctx, modelID); err != nil {
		return fmt.Errorf("switch model to %s: %w", modelID, err)
	}
	interval := time.Duration(e.cfg.Predictor.SwitchPollIntervalMS) * time.Millisecond
	for attempt := 0; attempt < e.cfg.Predictor.SwitchPollAttempts; attempt++ {
		ready, err := e.pred.ModelReady(ctx)
		if err != nil {
			return fmt.Errorf("poll model readiness: %w", err)
		}
		if ready {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("%w: %s", ErrModelNotAvailable, modelID)
}

func (e *Evaluator) switchBudget() time.Duration {
	interval := time.Duration(e.cfg.Predictor.SwitchPollIntervalMS) * time.Millisecond
	// One extra interval of slack over the polling budget.
	return interval * time.Duration(e.cfg.Predictor.SwitchPollAttempts+1)
}

func (e *Evaluator) setState(state State, modelID string, completed, total int) {
	e.publish(Status{State: state, ModelID: modelID, Completed: completed, Total: total})
	e.observer.OnStateChange(state)
}

func (e *Evaluator) publish(status Status) {
	e.status.Store(&status)
}
