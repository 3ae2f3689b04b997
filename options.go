package sdk

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/caseforge/sdk/recorder"
	"github.com/caseforge/sdk/rerun"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets a custom logger for the runner.
// If not provided, log output is discarded.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for the runner. Each executed
// case runs inside its own span. If not provided, a no-op tracer is used.
func WithTracer(tracer trace.Tracer) RunnerOption {
	return func(r *Runner) {
		r.tracer = tracer
	}
}

// WithSelection restricts the run to cases whose IDs are in the selection;
// everything else is skipped.
func WithSelection(sel *rerun.Selection) RunnerOption {
	return func(r *Runner) {
		r.selection = sel
	}
}

// WithRecorder sets the store the runner reports case outcomes to,
// enabling failed-case re-runs from a later process.
func WithRecorder(store recorder.Store) RunnerOption {
	return func(r *Runner) {
		r.store = store
	}
}

// WithRunName sets the suite name recorded runs are filed under.
// Defaults to "default".
func WithRunName(name string) RunnerOption {
	return func(r *Runner) {
		r.runName = name
	}
}
