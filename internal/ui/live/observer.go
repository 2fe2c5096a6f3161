// Package live renders evaluation progress as a full-screen terminal UI.
package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"focuseval/internal/runner"
	"focuseval/internal/sample"
)

// Controller runs the live UI and implements runner.RunObserver.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnRunStart forwards run start events to the UI.
func (c *Controller) OnRunStart(runID string, modelID string, total int) {
	c.send(Event{Kind: EventRunStart, RunID: runID, ModelID: modelID, Total: total})
}

// OnStateChange forwards phase transitions to the UI.
func (c *Controller) OnStateChange(state runner.State) {
	c.send(Event{Kind: EventState, Phase: state})
}

// OnSampleDone forwards one evaluated sample to the UI.
func (c *Controller) OnSampleDone(index int, result sample.SampleResult, err error) {
	event := Event{Kind: EventSample, Index: index, Result: result}
	if err != nil {
		event.Err = err.Error()
	}
	c.send(event)
}

// OnRunEnd forwards run completion to the UI and closes it.
func (c *Controller) OnRunEnd(result sample.EvaluationResult, err error) {
	event := Event{Kind: EventRunEnd, Final: result}
	if err != nil {
		event.Err = err.Error()
	}
	c.send(event)
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
