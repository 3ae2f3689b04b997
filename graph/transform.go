package graph

// Transform is the result of a value-transform callback. It carries the new
// value (if any) together with instructions for how the traversal should
// proceed below the current node.
type Transform[V any] struct {
	value   V
	present bool
	subtree bool
}

// Continue produces value for the current node and keeps visiting its
// descendants normally.
func Continue[V any](value V) Transform[V] {
	return Transform[V]{value: value, present: true}
}

// Subtree produces value for the current node and assigns the same value to
// every descendant node that carries a value, without invoking the transform
// again for any of them. This is a short-circuit device only; the visited
// structure is identical to what Continue would produce.
func Subtree[V any](value V) Transform[V] {
	return Transform[V]{value: value, present: true, subtree: true}
}

// Discard declines to produce a value for the current node. MapValues keeps
// the node in place without a value; CompactMapValues prunes the node and
// its entire subtree from the result.
func Discard[V any]() Transform[V] {
	return Transform[V]{}
}

// Map calls fn for every value-carrying node, depth-first with parent before
// children, and collects the results. Sibling order is unspecified.
func Map[K comparable, V, T any](g *Graph[K, V], fn func(path []K, value V) T) []T {
	var out []T
	g.ForEach(func(path []K, value V) {
		out = append(out, fn(path, value))
	})
	return out
}

// CompactMap is Map for callbacks that may decline to produce a result;
// results reported with ok == false are dropped.
func CompactMap[K comparable, V, T any](g *Graph[K, V], fn func(path []K, value V) (T, bool)) []T {
	var out []T
	g.ForEach(func(path []K, value V) {
		if t, ok := fn(path, value); ok {
			out = append(out, t)
		}
	})
	return out
}

// FlatMap calls fn for every value-carrying node and concatenates the
// returned slices in visitation order.
func FlatMap[K comparable, V, T any](g *Graph[K, V], fn func(path []K, value V) []T) []T {
	var out []T
	g.ForEach(func(path []K, value V) {
		out = append(out, fn(path, value)...)
	})
	return out
}

// MapValues produces a new graph with the same structure as g, transforming
// each stored value through fn. Nodes without a value remain without one,
// and a Discard result leaves the corresponding node valueless but in
// place. Returning Subtree from fn assigns its value to the node and all
// its value-carrying descendants without further callbacks.
func MapValues[K comparable, V, V2 any](g *Graph[K, V], fn func(path []K, value V) Transform[V2]) *Graph[K, V2] {
	out, _ := mapValues(g, nil, fn, false)
	return out
}

// CompactMapValues is MapValues with structural compaction: a Discard
// result prunes the node and its entire subtree from the output. Returns
// nil when the root itself is discarded.
func CompactMapValues[K comparable, V, V2 any](g *Graph[K, V], fn func(path []K, value V) Transform[V2]) *Graph[K, V2] {
	out, ok := mapValues(g, nil, fn, true)
	if !ok {
		return nil
	}
	return out
}

func mapValues[K comparable, V, V2 any](g *Graph[K, V], path []K, fn func(path []K, value V) Transform[V2], compact bool) (*Graph[K, V2], bool) {
	out := &Graph[K, V2]{dense: g.dense}
	if g.present {
		t := fn(path, g.value)
		if compact && !t.present {
			return nil, false
		}
		out.value = t.value
		out.present = t.present
		if t.subtree {
			fill(g, out, t.value)
			return out, true
		}
	}
	if len(g.children) > 0 {
		out.children = make(map[K]*Graph[K, V2], len(g.children))
		for key, child := range g.children {
			mapped, keep := mapValues(child, append(path[:len(path):len(path)], key), fn, compact)
			if keep {
				out.children[key] = mapped
			}
		}
	}
	return out, true
}

// fill copies g's structure into out, assigning value to every node of out
// whose counterpart in g carries a value.
func fill[K comparable, V, V2 any](g *Graph[K, V], out *Graph[K, V2], value V2) {
	if len(g.children) == 0 {
		return
	}
	out.children = make(map[K]*Graph[K, V2], len(g.children))
	for key, child := range g.children {
		node := &Graph[K, V2]{dense: child.dense}
		if child.present {
			node.value = value
			node.present = true
		}
		fill(child, node, value)
		out.children[key] = node
	}
}

// Pair holds one value from each of two zipped graphs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two graphs with the same key type into one whose node set is
// the intersection of both inputs' structures. Nodes present in only one
// input are dropped, recursively. A zipped node carries a value only when
// both counterparts do.
func Zip[K comparable, A, B any](a *Graph[K, A], b *Graph[K, B]) *Graph[K, Pair[A, B]] {
	out := &Graph[K, Pair[A, B]]{dense: a.dense && b.dense}
	if a.present && b.present {
		out.value = Pair[A, B]{First: a.value, Second: b.value}
		out.present = true
	}
	for key, ac := range a.children {
		bc, ok := b.children[key]
		if !ok {
			continue
		}
		if out.children == nil {
			out.children = make(map[K]*Graph[K, Pair[A, B]])
		}
		out.children[key] = Zip(ac, bc)
	}
	return out
}
