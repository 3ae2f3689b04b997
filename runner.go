package sdk

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/caseforge/sdk/recorder"
	"github.com/caseforge/sdk/rerun"
	"github.com/caseforge/sdk/testcase"
)

// Runner executes the cases of one generator traversal, in order.
//
// The runner is deliberately sequential: discriminator assignment depends
// on encounter order within a traversal, so cases are produced and executed
// one at a time. Callers wanting parallelism run multiple independent
// runners over separate generators.
type Runner struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	selection *rerun.Selection
	store     recorder.Store
	runName   string
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:  slog.New(slog.DiscardHandler),
		tracer:  noop.NewTracerProvider().Tracer("caseforge"),
		runName: "default",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CaseResult is the outcome of one executed or skipped case.
type CaseResult struct {
	// ID is the case's derived identity.
	ID testcase.ID

	// Status is the case's terminal status.
	Status recorder.Status

	// Err is the body's error when Status is StatusFailed.
	Err error
}

// Result summarizes one run.
type Result struct {
	// RunID is the recorded run's identifier; empty when no recorder was
	// configured.
	RunID string

	// Total is the number of cases the traversal produced.
	Total int

	// Ran, Skipped, and Failed count case dispositions. Failed cases are
	// included in Ran.
	Ran     int
	Skipped int
	Failed  int

	// Cases holds the per-case results in encounter order.
	Cases []CaseResult
}

// FailedIDs returns the IDs of this run's failed cases, ready to seed a
// rerun.Selection.
func (r *Result) FailedIDs() []testcase.ID {
	var ids []testcase.ID
	for _, c := range r.Cases {
		if c.Status == recorder.StatusFailed {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Run executes every case of one traversal of gen. Case body errors are
// collected into the result, not returned; the returned error reports
// runner-level failures only, such as a missing generator or an
// unreachable recorder.
func (r *Runner) Run(ctx context.Context, gen *testcase.Generator) (*Result, error) {
	if gen == nil {
		return nil, ErrNoGenerator
	}

	result := &Result{}
	if r.store != nil {
		run, err := r.store.Begin(ctx, r.runName)
		if err != nil {
			return nil, err
		}
		result.RunID = run.ID
	}

	r.logger.Info("run starting", "suite", r.runName, "cases", gen.CaseCount())

	for c := range gen.All() {
		result.Total++
		id := c.ID()

		if r.selection != nil && !r.selection.ContainsCase(c) {
			result.Skipped++
			result.Cases = append(result.Cases, CaseResult{ID: id, Status: recorder.StatusSkipped})
			r.logger.Debug("case skipped", "case", id.Key())
			r.report(ctx, result.RunID, recorder.Outcome{CaseID: id, Status: recorder.StatusSkipped})
			continue
		}

		if !id.Stable() {
			r.logger.Warn("case ID is not stable; re-run selection may not find it again", "case", id.Key())
		}

		outcome := r.execute(ctx, c, id)
		result.Ran++
		status := recorder.StatusPassed
		if outcome.err != nil {
			result.Failed++
			status = recorder.StatusFailed
		}
		result.Cases = append(result.Cases, CaseResult{ID: id, Status: status, Err: outcome.err})
		r.report(ctx, result.RunID, recorder.Outcome{
			CaseID:      id,
			Status:      status,
			Error:       outcome.errMessage(),
			StartedAt:   outcome.startedAt,
			CompletedAt: outcome.completedAt,
		})
	}

	r.logger.Info("run finished",
		"suite", r.runName,
		"total", result.Total,
		"ran", result.Ran,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

type executed struct {
	err         error
	startedAt   int64
	completedAt int64
}

func (e executed) errMessage() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (r *Runner) execute(ctx context.Context, c *testcase.Case, id testcase.ID) executed {
	spanCtx, span := r.tracer.Start(ctx, "testcase",
		trace.WithAttributes(
			attribute.String("case.id", id.Key()),
			attribute.Int("case.discriminator", id.Discriminator),
			attribute.Int("case.arguments", len(c.Arguments())),
		),
	)
	defer span.End()

	out := executed{startedAt: time.Now().UnixMilli()}
	out.err = c.Invoke(spanCtx)
	out.completedAt = time.Now().UnixMilli()

	if out.err != nil {
		span.RecordError(out.err)
		span.SetStatus(codes.Error, out.err.Error())
		r.logger.Error("case failed", "case", id.Key(), "error", out.err)
	} else {
		r.logger.Debug("case passed", "case", id.Key())
	}
	return out
}

// report sends one outcome to the configured store. Recording is advisory:
// a store failure mid-run is logged and the run continues, matching the
// policy that representable failures never abort a pass.
func (r *Runner) report(ctx context.Context, runID string, outcome recorder.Outcome) {
	if r.store == nil {
		return
	}
	if err := r.store.Report(ctx, runID, outcome); err != nil {
		r.logger.Warn("failed to record case outcome", "run", runID, "error", err)
	}
}
