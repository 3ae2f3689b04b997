// Package rerun supports re-running a recorded subset of test cases.
//
// A Selection is a set of test-case IDs materialized as a sparse keyed
// graph, queryable in O(depth) per case while a new generation pass is
// underway:
//
//	sel := rerun.NewSelection(recordedIDs...)
//	for c := range gen.All() {
//	    if !sel.Contains(c.ID()) {
//	        continue
//	    }
//	    // run c
//	}
//
// A missing path is simply "not selected", never an error, and intermediate
// graph nodes are never treated as matches.
//
// # Record Files
//
// A Record is the persisted form of one run's case IDs, typically the
// failures to retry. Load and Save support JSON and YAML, chosen by file
// extension (.json, .yaml, .yml):
//
//	rec, err := rerun.Load("failed.json")
//	if err != nil {
//	    return err
//	}
//	sel := rec.Selection()
//
// Decoding tolerates records from older writers: missing discriminators
// default to 0 and missing stability flags to true.
package rerun
