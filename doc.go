// Package sdk generates, identifies, and runs parameterized test cases.
//
// The SDK takes a test function together with its declared parameters and
// argument collections and produces a lazily-evaluated sequence of test
// cases, each with a deterministic identity that survives re-runs. On top
// of that identity it supports selecting a recorded subset of cases — for
// example, re-running only the cases that failed last time.
//
// # Core Concepts
//
// The SDK is organized around a handful of concepts:
//
//   - Cases: one concrete invocation of a test function with a specific
//     argument tuple bound (package testcase)
//   - Argument identity: a stable byte fingerprint of one argument value
//     (package identity)
//   - Discriminators: integers disambiguating cases whose argument
//     identities collide
//   - Selections: sets of case IDs materialized for fast membership
//     queries during a later generation pass (package rerun)
//   - Keyed graphs: the trie-like structure backing plans and selections
//     (package graph)
//
// # Running Cases
//
// The Runner drives one generator traversal in order, with optional
// selection filtering, logging, tracing, and outcome recording:
//
//	params := []testcase.Parameter{{Index: 0, FirstName: "x"}}
//	gen := testcase.FromValues(params, []any{1, 1, 2}, body)
//
//	runner := sdk.NewRunner(
//	    sdk.WithLogger(logger),
//	    sdk.WithRunName("parser-suite"),
//	)
//	result, err := runner.Run(ctx, gen)
//
// To re-run only the failures of a previous recorded run:
//
//	ids, _ := store.FailedIDs(ctx, lastRun.ID)
//	runner := sdk.NewRunner(sdk.WithSelection(rerun.NewSelection(ids...)))
//
// # Ordering and Concurrency
//
// Case production within one traversal is strictly ordered because
// discriminator assignment depends on encounter order; the Runner never
// reorders or parallelizes it. Independent traversals of the same
// generator, including concurrent ones, each start fresh and observe
// identical cases.
package sdk
