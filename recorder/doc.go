// Package recorder persists per-run test case outcomes so a later process
// can re-run exactly the cases that failed.
//
// The recorder is the writing side of the re-run workflow: a runner reports
// each case outcome under a run ID, and a future invocation asks for the
// failed case IDs of a previous run to seed a rerun.Selection:
//
//	rec, err := recorder.New(recorder.Options{URL: "redis://localhost:6379"})
//	if err != nil {
//	    return err
//	}
//	defer rec.Close()
//
//	run, err := rec.Begin(ctx, "parser-suite")
//	// ... report outcomes during the run ...
//
//	// Later, possibly in another process:
//	last, err := rec.LastRun(ctx, "parser-suite")
//	ids, err := rec.FailedIDs(ctx, last.ID)
//	sel := rerun.NewSelection(ids...)
//
// Outcomes are stored in Redis as JSON values under keys namespaced
// "caseforge:". Case IDs round-trip through their persisted JSON shape, so
// records survive process and host boundaries as long as the argument IDs
// involved are stable.
package recorder
