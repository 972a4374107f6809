// Package engine executes declarative action scripts against a browser
// driver: it evaluates step and group conditions, dispatches each step to
// its executor, applies failure-propagation policy, and folds every declared
// step into an execution report.
package engine

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/v0xg/stepwise/internal/action"
	"github.com/v0xg/stepwise/internal/driver"
)

// Engine runs action scripts. Execution is strictly sequential: one step
// completes before the next begins, and the driver session is never shared
// across concurrent paths.
type Engine struct {
	driver driver.Driver
	pacer  Pacer
	log    *slog.Logger
}

// Options configures engine behavior.
type Options struct {
	// Pacer injects humanization delays. Nil means the default random pacer.
	Pacer Pacer
	// Logger receives step-level diagnostics. Nil discards them.
	Logger *slog.Logger
}

// New creates an engine bound to a driver session.
func New(d driver.Driver, opts Options) *Engine {
	pacer := opts.Pacer
	if pacer == nil {
		pacer = NewPacer(0)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{driver: d, pacer: pacer, log: log}
}

// Run executes the top-level entry list and returns the aggregate report.
// Groups consume one global index per declared step regardless of how many
// actually ran. A failed single action stops the run unless it opts into
// continueOnError; untried top-level entries are not recorded. That is
// deliberately different from within-group propagation, which records a
// skip for every untried member step.
func (e *Engine) Run(entries []action.Entry) *Report {
	report := NewReport()
	index := 0

	for _, entry := range entries {
		if entry.Group != nil {
			results, count := e.runGroup(*entry.Group, index)
			for _, res := range results {
				report.Add(res)
			}
			index += count
			continue
		}
		if entry.Action == nil {
			continue
		}

		res := e.runStep(*entry.Action, index)
		report.Add(res)
		index++

		if res.Status == StatusFailed {
			cont := entry.Action.ContinueOnError != nil && *entry.Action.ContinueOnError
			if !cont {
				e.log.Error("stopping run after failure", "index", res.Index, "type", res.Type)
				break
			}
		}
		e.pacer.Sleep(stepPauseMin, stepPauseMax)
	}
	return report
}

// runStep executes one step: condition, executor dispatch, post-delay. Every
// executor error is converted into a failed result here; nothing propagates
// further up.
func (e *Engine) runStep(a action.Action, index int) Result {
	start := time.Now()

	if !e.evaluate(a.Condition) {
		return Result{
			Index:    index,
			Type:     a.Type,
			Status:   StatusSkipped,
			Duration: msSince(start),
			Message:  fmt.Sprintf("Condition not met for %s action", a.Type),
			Selector: a.Selector,
		}
	}

	msg, err := e.dispatch(a)
	if err != nil {
		e.log.Warn("action failed", "index", index, "type", a.Type, "error", err)
		return Result{
			Index:    index,
			Type:     a.Type,
			Status:   StatusFailed,
			Duration: msSince(start),
			Message:  "Action failed: " + err.Error(),
			Selector: a.Selector,
			Error:    err.Error(),
		}
	}

	if a.WaitAfter > 0 {
		time.Sleep(time.Duration(a.WaitAfter) * time.Millisecond)
	}
	return Result{
		Index:    index,
		Type:     a.Type,
		Status:   StatusSuccess,
		Duration: msSince(start),
		Message:  msg,
		Selector: a.Selector,
	}
}

// dispatch routes a step to its executor. An unrecognized type is an error,
// never a silent skip.
func (e *Engine) dispatch(a action.Action) (string, error) {
	switch a.Type {
	case action.KindWait:
		return e.execWait(a)
	case action.KindClick:
		return e.execClick(a)
	case action.KindType:
		return e.execType(a)
	case action.KindPressEnter:
		return e.execPressEnter(a)
	case action.KindScript:
		return e.execScript(a)
	default:
		return "", fmt.Errorf("unknown action type: %s", a.Type)
	}
}

// runGroup executes a group's steps in order. The second return value is the
// number of global indices the group consumed, always len(steps).
func (e *Engine) runGroup(g action.Group, baseIndex int) ([]Result, int) {
	// Group condition gates the whole unit: no member conditions are
	// evaluated and no executors run.
	if g.Condition != nil && !e.evaluate(g.Condition) {
		results := make([]Result, 0, len(g.Steps))
		for i, step := range g.Steps {
			results = append(results, Result{
				Index:    baseIndex + i,
				Type:     step.Type,
				Status:   StatusSkipped,
				Message:  "Group condition not met",
				Selector: step.Selector,
			})
		}
		return results, len(g.Steps)
	}

	var results []Result
	for i, step := range g.Steps {
		res := e.runStep(step, baseIndex+i)
		results = append(results, res)

		if res.Status == StatusFailed {
			cont := g.ContinueOnError
			if step.ContinueOnError != nil {
				cont = *step.ContinueOnError
			}
			if !cont {
				// Propagate: the rest of the group is declared skipped
				// without re-evaluating conditions.
				for j := i + 1; j < len(g.Steps); j++ {
					results = append(results, Result{
						Index:    baseIndex + j,
						Type:     g.Steps[j].Type,
						Status:   StatusSkipped,
						Message:  "Skipped due to previous failure",
						Selector: g.Steps[j].Selector,
					})
				}
				break
			}
		}
		e.pacer.Sleep(stepPauseMin, stepPauseMax)
	}
	return results, len(g.Steps)
}

func msSince(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
