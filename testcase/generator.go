package testcase

import (
	"context"
	"iter"
	"sort"

	"github.com/caseforge/sdk/identity"
	"github.com/caseforge/sdk/product"
)

// Generator lazily produces the sequence of Cases for one test declaration.
//
// A Generator holds no traversal state of its own: every call to All starts
// an independent pass with a fresh discriminator collision map, so repeated
// or concurrent full traversals each see the same cases with the same
// discriminators. Within a single traversal the production order is
// significant and must not be reordered.
type Generator struct {
	parameters []Parameter
	body       Body
	resolver   identity.Resolver

	// tuples returns a restartable sequence of raw argument tuples, one
	// tuple per case, components already destructured across parameters.
	tuples func() iter.Seq[[]any]
}

// Option configures a Generator.
type Option func(*Generator)

// WithResolver replaces the identity resolver used to derive argument IDs.
func WithResolver(r identity.Resolver) Option {
	return func(g *Generator) {
		g.resolver = r
	}
}

// Single creates a generator for a non-parameterized test: exactly one case
// wrapping body, with no arguments.
func Single(body func(ctx context.Context) error, opts ...Option) *Generator {
	return newGenerator(nil, func(ctx context.Context, _ ...any) error {
		return body(ctx)
	}, func() iter.Seq[[]any] {
		return func(yield func([]any) bool) {
			yield(nil)
		}
	}, opts)
}

// FromValues creates a generator over a single argument collection. Each
// element becomes one case. When more than one parameter is declared and an
// element is an []any tuple, the tuple is destructured, one component per
// parameter; otherwise the element is bound whole to the first parameter.
func FromValues(params []Parameter, values []any, body Body, opts ...Option) *Generator {
	return newGenerator(params, body, func() iter.Seq[[]any] {
		return func(yield func([]any) bool) {
			for _, v := range values {
				if !yield(destructure(v, len(params))) {
					return
				}
			}
		}
	}, opts)
}

// FromProduct creates a generator over the cartesian product of two
// argument collections, first-major. Each pair becomes one case against the
// two declared parameters.
func FromProduct(params []Parameter, first, second []any, body Body, opts ...Option) *Generator {
	p := product.New(first, second)
	return newGenerator(params, body, func() iter.Seq[[]any] {
		return func(yield func([]any) bool) {
			for a, b := range p.All() {
				if !yield(pairTuple(a, b, len(params))) {
					return
				}
			}
		}
	}, opts)
}

// FromPairs creates a generator over a pre-zipped sequence of pairs. With
// two declared parameters each pair is destructured; with one, the pair is
// kept intact as a single argument.
func FromPairs(params []Parameter, pairs [][2]any, body Body, opts ...Option) *Generator {
	return newGenerator(params, body, func() iter.Seq[[]any] {
		return func(yield func([]any) bool) {
			for _, p := range pairs {
				if !yield(pairTuple(p[0], p[1], len(params))) {
					return
				}
			}
		}
	}, opts)
}

// FromMap creates a generator over a keyed mapping, treating each (key,
// value) entry as a pair under the same destructuring rule as FromPairs.
// Entries are visited in sorted key order: discriminator assignment depends
// on encounter order, and Go's map iteration order would otherwise differ
// between traversals.
func FromMap(params []Parameter, m map[string]any, body Body, opts ...Option) *Generator {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return newGenerator(params, body, func() iter.Seq[[]any] {
		return func(yield func([]any) bool) {
			for _, k := range keys {
				if !yield(pairTuple(k, m[k], len(params))) {
					return
				}
			}
		}
	}, opts)
}

func newGenerator(params []Parameter, body Body, tuples func() iter.Seq[[]any], opts []Option) *Generator {
	g := &Generator{parameters: params, body: body, tuples: tuples}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// destructure splits an []any tuple across paramCount parameters; any other
// value, or a single declared parameter, yields a one-argument tuple.
func destructure(v any, paramCount int) []any {
	if paramCount > 1 {
		if tuple, ok := v.([]any); ok {
			return tuple
		}
	}
	return []any{v}
}

// pairTuple applies the destructuring rule to an (a, b) pair.
func pairTuple(a, b any, paramCount int) []any {
	if paramCount > 1 {
		return []any{a, b}
	}
	return []any{[2]any{a, b}}
}

// Parameters returns the declared parameters.
func (g *Generator) Parameters() []Parameter {
	return g.parameters
}

// All returns the sequence of cases for one full traversal. Each returned
// case is freshly constructed; its discriminator is the number of earlier
// cases in this same traversal that share its argument identities.
func (g *Generator) All() iter.Seq[*Case] {
	return func(yield func(*Case) bool) {
		// Collision counts reset for every traversal.
		seen := make(map[string]int)
		for tuple := range g.tuples() {
			c := g.makeCase(tuple)
			if c.IsParameterized() {
				key := c.ID().argumentsKey()
				c.discriminator = seen[key]
				seen[key]++
			}
			if !yield(c) {
				return
			}
		}
	}
}

// CaseCount returns the number of cases a full traversal yields.
func (g *Generator) CaseCount() int {
	n := 0
	for range g.tuples() {
		n++
	}
	return n
}

func (g *Generator) makeCase(tuple []any) *Case {
	if tuple == nil {
		return &Case{body: g.body}
	}
	args := make([]Argument, len(tuple))
	for i, v := range tuple {
		p := Parameter{Index: i}
		if i < len(g.parameters) {
			p = g.parameters[i]
		}
		args[i] = Argument{Value: v, ID: g.resolver.ForValue(v), Parameter: p}
	}
	return &Case{arguments: args, body: g.body}
}
