// Package product provides a lazy view over the cartesian product of two
// collections.
//
// A Product does not materialize the pairs it describes. Iteration walks the
// first collection in order and, for each of its elements, the entirety of
// the second collection, so the product of [1, 2] and ["a", "b"] yields
// (1,"a"), (1,"b"), (2,"a"), (2,"b").
//
// Both input collections must support repeated, independent iteration with
// identical results each time; the Product stores them as slices to
// guarantee this. A one-shot source such as a consuming iterator must be
// materialized first — Collect does that for iter.Seq values.
//
// Iteration is restartable: any number of goroutines may range over All()
// concurrently, each holding only its own cursor.
package product
