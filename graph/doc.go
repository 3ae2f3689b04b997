// Package graph provides a trie-like tree keyed by paths of hashable keys.
//
// A Graph stores a value at every reachable node and addresses nodes by an
// ordered sequence of keys. It is the storage structure used throughout the
// SDK for test plans, re-run selections, and any other state organized by
// hierarchical path.
//
// # Dense and Sparse Graphs
//
// A graph comes in two flavors built on the same core:
//
//   - Dense, created with New: every node carries a meaningful value,
//     starting with the root. Intermediate nodes created during insertion
//     receive a caller-supplied placeholder value.
//   - Sparse, created with NewSparse: nodes may exist purely as structure,
//     without a value. Absence of a value is a normal, queryable state, not
//     an error.
//
// # Path Operations
//
// All path operations treat a missing path as an ordinary outcome:
//
//	g := graph.NewSparse[string, int]()
//	g.Insert([]string{"a", "b", "c"}, 42)
//
//	v, ok := g.Value([]string{"a", "b", "c"}) // 42, true
//	_, ok = g.Value([]string{"a", "b"})       // 0, false: node exists, no value
//	_, ok = g.Value([]string{"x"})            // 0, false: node absent
//
// Nothing in this package panics or returns an error for an out-of-bounds
// path.
//
// # Traversal
//
// Traversal is depth-first, parent before children. The order among sibling
// subtrees is unspecified and must not be relied upon. Every callback
// receives the full key path accumulated from the root.
//
// MapValues and CompactMapValues accept a Transform result that can
// short-circuit an entire subtree: returning Subtree(v) assigns v to the
// current node and every descendant that carries a value, without invoking
// the transform again for those descendants.
//
// # Concurrency
//
// A Graph is safe for concurrent read-only use from any number of
// goroutines; every traversal keeps its own cursor state. Mutation is not
// synchronized and requires exclusive ownership. Clone produces an
// independent deep copy that can be mutated without affecting the original.
package graph
