package sdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/caseforge/sdk/recorder"
	"github.com/caseforge/sdk/rerun"
	"github.com/caseforge/sdk/testcase"
)

func intParams() []testcase.Parameter {
	return []testcase.Parameter{{Index: 0, FirstName: "x"}}
}

func TestRunNilGenerator(t *testing.T) {
	_, err := NewRunner().Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoGenerator)
}

func TestRunExecutesAllCasesInOrder(t *testing.T) {
	var seen []any
	gen := testcase.FromValues(intParams(), []any{1, 2, 3}, func(ctx context.Context, args ...any) error {
		seen = append(seen, args[0])
		return nil
	})

	result, err := NewRunner().Run(context.Background(), gen)
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2, 3}, seen)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Ran)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)
}

func TestRunCollectsFailures(t *testing.T) {
	boom := errors.New("boom")
	gen := testcase.FromValues(intParams(), []any{1, 2, 3}, func(ctx context.Context, args ...any) error {
		if args[0] == 2 {
			return boom
		}
		return nil
	})

	result, err := NewRunner().Run(context.Background(), gen)
	require.NoError(t, err, "case failures are data, not runner errors")

	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.FailedIDs(), 1)
	assert.ErrorIs(t, result.Cases[1].Err, boom)
}

func TestRunWithSelectionSkipsUnselected(t *testing.T) {
	gen := testcase.FromValues(intParams(), []any{1, 1, 2}, func(ctx context.Context, args ...any) error {
		return nil
	})

	// Select only the second duplicate of value 1.
	var target testcase.ID
	i := 0
	for c := range gen.All() {
		if i == 1 {
			target = c.ID()
		}
		i++
	}

	runner := NewRunner(WithSelection(rerun.NewSelection(target)))
	result, err := runner.Run(context.Background(), gen)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Ran)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, recorder.StatusSkipped, result.Cases[0].Status)
	assert.Equal(t, recorder.StatusPassed, result.Cases[1].Status)
	assert.Equal(t, recorder.StatusSkipped, result.Cases[2].Status)
}

func TestRunEmitsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer tp.Shutdown(context.Background())

	gen := testcase.FromValues(intParams(), []any{1, 2}, func(ctx context.Context, args ...any) error {
		if args[0] == 2 {
			return errors.New("nope")
		}
		return nil
	})

	runner := NewRunner(WithTracer(tp.Tracer("test")))
	_, err := runner.Run(context.Background(), gen)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.Equal(t, "testcase", span.Name())
	}
	// The failing case records its error on the span.
	assert.NotEmpty(t, spans[1].Events())
}

func TestRunRecordsOutcomesForRerun(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := recorder.New(recorder.Options{URL: fmt.Sprintf("redis://%s", mr.Addr())})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	gen := testcase.FromValues(intParams(), []any{1, 1, 2}, func(ctx context.Context, args ...any) error {
		if args[0] == 1 {
			return errors.New("flaky")
		}
		return nil
	})

	runner := NewRunner(
		WithRecorder(store),
		WithRunName("flaky-suite"),
		WithLogger(slog.New(slog.NewTextHandler(os.Stdout, nil))),
	)
	result, err := runner.Run(context.Background(), gen)
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.Failed)

	// A later process resolves the run by suite name and re-runs only the
	// recorded failures.
	ctx := context.Background()
	last, err := store.LastRun(ctx, "flaky-suite")
	require.NoError(t, err)
	assert.Equal(t, result.RunID, last.ID)

	ids, err := store.FailedIDs(ctx, last.ID)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	var rerunValues []any
	retry := NewRunner(WithSelection(rerun.NewSelection(ids...)))
	gen2 := testcase.FromValues(intParams(), []any{1, 1, 2}, func(ctx context.Context, args ...any) error {
		rerunValues = append(rerunValues, args[0])
		return nil
	})
	retryResult, err := retry.Run(ctx, gen2)
	require.NoError(t, err)

	assert.Equal(t, []any{1, 1}, rerunValues)
	assert.Equal(t, 2, retryResult.Ran)
	assert.Equal(t, 1, retryResult.Skipped)
}

func TestRunSingleCaseGenerator(t *testing.T) {
	ran := false
	gen := testcase.Single(func(ctx context.Context) error {
		ran = true
		return nil
	})

	result, err := NewRunner().Run(context.Background(), gen)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 0, result.Cases[0].ID.Discriminator)
}
