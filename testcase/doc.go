// Package testcase turns a test body plus zero or more argument collections
// into a lazily-produced sequence of individually-identified test cases.
//
// A Generator is built from one of several input shapes:
//
//	// No arguments: exactly one case.
//	g := testcase.Single(body)
//
//	// One collection, one argument per element.
//	g := testcase.FromValues(params, []any{1, 1, 2}, body)
//
//	// Two collections, one case per pair of their cartesian product.
//	g := testcase.FromProduct(params, firsts, seconds, body)
//
//	// Pre-zipped pairs, or a keyed map treated as (key, value) pairs.
//	g := testcase.FromPairs(params, pairs, body)
//	g := testcase.FromMap(params, m, body)
//
// When a shape yields tuples and more than one parameter is declared, each
// tuple component becomes its own argument, paired with its parameter by
// position. With a single declared parameter the tuple is kept intact as one
// argument.
//
// # Identity and Discriminators
//
// Every argument gets a byte identity from the identity package; a case's ID
// is the ordered sequence of its argument IDs plus a discriminator. The
// discriminator disambiguates cases whose argument identities collide — a
// literal duplicate value in an argument collection, say [1, 1], produces
// two distinct cases with discriminators 0 and 1, each selectable on its
// own in a later run.
//
// Discriminators are assigned in encounter order while iterating, from a
// collision map that starts empty at the beginning of every full traversal.
// Repeating a traversal therefore reproduces the same discriminator
// sequence, and any number of independent traversals may run concurrently.
// The flip side is that case production within one traversal is strictly
// ordered and must not be parallelized.
//
// # Persistence
//
// An ID marshals to JSON as
//
//	{"argumentIDs": [{"bytes": "...", "isStable": true}], "discriminator": 0}
//
// Decoding tolerates records from older writers: a missing discriminator
// defaults to 0 and a missing isStable flag to true.
package testcase
