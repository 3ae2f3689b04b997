package graph

// Graph is a tree with key-value semantics, keyed by ordered paths of K.
// Every node may carry a value of type V; whether a value is guaranteed to
// be present depends on how the graph was constructed (see New and
// NewSparse).
//
// The zero value of Graph is not usable; construct graphs with New or
// NewSparse.
type Graph[K comparable, V any] struct {
	value   V
	present bool

	// dense marks nodes of a graph built with New. A dense node always
	// carries a value; clearing it resets the value to V's zero value
	// rather than removing it.
	dense bool

	children map[K]*Graph[K, V]
}

// New creates a dense graph whose root carries the given value.
func New[K comparable, V any](root V) *Graph[K, V] {
	return &Graph[K, V]{value: root, present: true, dense: true}
}

// NewSparse creates a sparse graph whose root carries no value.
func NewSparse[K comparable, V any]() *Graph[K, V] {
	return &Graph[K, V]{}
}

// Subgraph returns the node reached by following path from g, one key per
// step. The second result is false if any step of the path is missing.
func (g *Graph[K, V]) Subgraph(path []K) (*Graph[K, V], bool) {
	node := g
	for _, key := range path {
		child, ok := node.children[key]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Value returns the value stored at path. The second result is false if the
// path is missing or the node at path carries no value.
func (g *Graph[K, V]) Value(path []K) (V, bool) {
	node, ok := g.Subgraph(path)
	if !ok || !node.present {
		var zero V
		return zero, false
	}
	return node.value, true
}

// UpdateValue sets the value at path, requiring every node along the path to
// already exist. If any node is missing, no mutation occurs and the call
// reports no previous value.
//
// The returned value is the one previously stored at that exact node; the
// second result is false when the node was missing or carried no value.
func (g *Graph[K, V]) UpdateValue(path []K, value V) (V, bool) {
	node, ok := g.Subgraph(path)
	if !ok {
		var zero V
		return zero, false
	}
	prev, had := node.value, node.present
	node.value = value
	node.present = true
	if !had {
		var zero V
		return zero, false
	}
	return prev, true
}

// Insert sets the value at path, creating any missing nodes along the way.
// Created intermediate nodes carry no value (sparse insertion).
//
// The returned value is the one previously stored at the terminal node; the
// second result is false when the terminal node was newly created or carried
// no value.
func (g *Graph[K, V]) Insert(path []K, value V) (V, bool) {
	return g.insert(path, value, func() *Graph[K, V] {
		return &Graph[K, V]{}
	})
}

// InsertWith sets the value at path, creating any missing nodes along the
// way with intermediate as their value (dense insertion).
//
// The returned value is the one previously stored at the terminal node, and
// the second result reports whether the terminal node existed before the
// call. Note that a pre-existing node whose value happens to equal
// intermediate is indistinguishable, from the return value alone, from a
// node this call created; callers needing that distinction must probe with
// Value or Subgraph first.
func (g *Graph[K, V]) InsertWith(path []K, value, intermediate V) (V, bool) {
	return g.insert(path, value, func() *Graph[K, V] {
		return &Graph[K, V]{value: intermediate, present: true, dense: true}
	})
}

func (g *Graph[K, V]) insert(path []K, value V, newNode func() *Graph[K, V]) (V, bool) {
	node := g
	existed := true
	for _, key := range path {
		child, ok := node.children[key]
		if !ok {
			child = newNode()
			if node.children == nil {
				node.children = make(map[K]*Graph[K, V])
			}
			node.children[key] = child
			existed = false
		}
		node = child
	}
	prev, had := node.value, node.present
	node.value = value
	node.present = true
	if !existed || !had {
		var zero V
		return zero, false
	}
	return prev, true
}

// Remove removes the value at path. If keepChildren is true, only the value
// is cleared and the node and its descendants remain in place; otherwise the
// entire subtree at path is detached and discarded.
//
// Clearing a value on a dense graph resets it to V's zero value; on a sparse
// graph the node is left without a value. Removing at an empty path is a
// no-op on a dense graph, since the root value is mandatory there; on a
// sparse graph it clears the root value and, unless keepChildren is set,
// drops all descendants.
//
// The returned value is the one previously stored at path; the second result
// is false when the path was missing or carried no value.
func (g *Graph[K, V]) Remove(path []K, keepChildren bool) (V, bool) {
	var zero V
	if len(path) == 0 {
		if g.dense {
			return zero, false
		}
		prev, had := g.value, g.present
		g.value = zero
		g.present = false
		if !keepChildren {
			g.children = nil
		}
		if !had {
			return zero, false
		}
		return prev, true
	}

	parent, ok := g.Subgraph(path[:len(path)-1])
	if !ok {
		return zero, false
	}
	key := path[len(path)-1]
	node, ok := parent.children[key]
	if !ok {
		return zero, false
	}
	prev, had := node.value, node.present
	if keepChildren {
		node.value = zero
		node.present = node.dense
	} else {
		delete(parent.children, key)
	}
	if !had {
		return zero, false
	}
	return prev, true
}

// Count returns the exact number of nodes in the graph, including the root.
// It visits every node and is O(n).
func (g *Graph[K, V]) Count() int {
	n := 1
	for _, child := range g.children {
		n += child.Count()
	}
	return n
}

// UnderestimatedCount returns a lower bound on Count in O(1): the node
// itself plus its direct children, without descending further.
func (g *Graph[K, V]) UnderestimatedCount() int {
	return 1 + len(g.children)
}

// Clone returns an independent deep copy of the graph. Mutating the clone
// never affects the original, which keeps concurrent readers of the
// original safe.
func (g *Graph[K, V]) Clone() *Graph[K, V] {
	out := &Graph[K, V]{value: g.value, present: g.present, dense: g.dense}
	if len(g.children) > 0 {
		out.children = make(map[K]*Graph[K, V], len(g.children))
		for key, child := range g.children {
			out.children[key] = child.Clone()
		}
	}
	return out
}

// ForEach calls fn once for every node that carries a value, passing the
// full key path from the root. Traversal is depth-first, parent before
// children; sibling order is unspecified.
func (g *Graph[K, V]) ForEach(fn func(path []K, value V)) {
	g.forEach(nil, fn)
}

func (g *Graph[K, V]) forEach(path []K, fn func(path []K, value V)) {
	if g.present {
		fn(path, g.value)
	}
	for key, child := range g.children {
		child.forEach(append(path[:len(path):len(path)], key), fn)
	}
}
