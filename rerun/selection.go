package rerun

import (
	"strconv"

	"github.com/caseforge/sdk/graph"
	"github.com/caseforge/sdk/testcase"
)

// Selection is a set of test-case IDs supporting fast membership queries.
// It is built once from a collection of IDs and is safe for concurrent
// reads afterward.
type Selection struct {
	graph *graph.Graph[string, bool]
	size  int
}

// NewSelection builds a Selection containing exactly the given IDs.
func NewSelection(ids ...testcase.ID) *Selection {
	g := graph.NewSparse[string, bool]()
	size := 0
	for _, id := range ids {
		if _, had := g.Insert(selectionPath(id), true); !had {
			size++
		}
	}
	return &Selection{graph: g, size: size}
}

// Contains reports whether id was included when the selection was built.
// Intermediate path nodes created on behalf of longer IDs never match, and
// an ID whose path is absent is simply not selected.
func (s *Selection) Contains(id testcase.ID) bool {
	v, ok := s.graph.Value(selectionPath(id))
	return ok && v
}

// ContainsCase is Contains over a case's derived ID.
func (s *Selection) ContainsCase(c *testcase.Case) bool {
	return s.Contains(c.ID())
}

// Len returns the number of distinct IDs in the selection.
func (s *Selection) Len() int {
	return s.size
}

// selectionPath encodes an ID as a graph key path: one key per argument ID
// in order, then a final discriminator key. The discriminator is part of
// the path so that colliding cases remain individually selectable.
func selectionPath(id testcase.ID) []string {
	path := make([]string, 0, len(id.ArgumentIDs)+1)
	for _, a := range id.ArgumentIDs {
		path = append(path, testcase.EncodeArgumentID(a))
	}
	return append(path, "#"+strconv.Itoa(id.Discriminator))
}
