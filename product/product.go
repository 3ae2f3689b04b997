package product

import (
	"iter"
	"math"
)

// Product is a lazy cartesian product of two slices. The zero value is an
// empty product.
type Product[A, B any] struct {
	first  []A
	second []B
}

// New creates a product over the given slices. The slices are retained, not
// copied; callers must not mutate them while the product is in use.
func New[A, B any](first []A, second []B) Product[A, B] {
	return Product[A, B]{first: first, second: second}
}

// All returns an iterator over every (a, b) pair, first-major: for each
// element of the first collection the whole second collection is yielded
// before advancing. The iterator may be ranged over any number of times,
// including concurrently, and is empty if either input is empty.
func (p Product[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for _, a := range p.first {
			for _, b := range p.second {
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

// Len returns the exact number of pairs.
func (p Product[A, B]) Len() int {
	return saturatingMul(len(p.first), len(p.second))
}

// UnderestimatedCount returns a lower bound on Len. The multiplication
// saturates at math.MaxInt instead of overflowing.
func (p Product[A, B]) UnderestimatedCount() int {
	return saturatingMul(len(p.first), len(p.second))
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// Collect materializes a one-shot sequence into a slice so it can be wrapped
// by a Product. Sequences are consumed exactly once; wrapping one directly
// would violate the repeated-iteration requirement.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
