// Edge mutation and edge-level queries for Graph.
//
// Direction convention: AddEdge(dst, src) records the edge src→dst, read
// as "dst depends on src". Successor/predecessor queries follow the same
// orientation: src gains dst as a successor, dst gains src as a
// predecessor.

package core

// AddEdge records the edge src→dst between two existing vertices.
// Returns ErrUnknownKey if either endpoint is absent; validation precedes
// mutation, so a failed call leaves the graph exactly as it was.
// Re-adding an existing edge is a silent no-op. A self-loop (src == dst)
// permanently marks the graph as directly cyclic.
// Complexity: O(1).
func (g *Graph[K, V]) AddEdge(dst, src K) error {
	// 1) Both endpoints must already exist; edges never create vertices.
	from, ok := g.vertices[src]
	if !ok {
		return ErrUnknownKey
	}
	to, ok := g.vertices[dst]
	if !ok {
		return ErrUnknownKey
	}

	// 2) Self-loop fast-path flag: sticky, never reset.
	if src == dst {
		g.directCyclic = true
	}

	// 3) Mirror the edge on both endpoints (set semantics, idempotent).
	from.linkTo(to)

	return nil
}

// AddEdges records one edge src→dst per element of srcs, in argument
// order. Validation is per element: the first missing key aborts with
// ErrUnknownKey, leaving the edges added so far in place (identical to
// calling AddEdge in a loop).
//
// A prepared key slice expands into the same call shape:
//
//	g.AddEdges("binary", objs...)
//
// Complexity: O(len(srcs)).
func (g *Graph[K, V]) AddEdges(dst K, srcs ...K) error {
	for _, src := range srcs {
		if err := g.AddEdge(dst, src); err != nil {
			return err
		}
	}

	return nil
}

// HasEdge reports whether the edge src→dst is present.
// Unknown endpoints report false rather than an error.
// Complexity: O(1).
func (g *Graph[K, V]) HasEdge(dst, src K) bool {
	from, ok := g.vertices[src]
	if !ok {
		return false
	}
	_, ok = from.succSet[dst]

	return ok
}

// OutDegree returns the number of distinct successors of key.
// Returns ErrUnknownKey if key is absent.
// Complexity: O(1).
func (g *Graph[K, V]) OutDegree(key K) (int, error) {
	v, ok := g.vertices[key]
	if !ok {
		return 0, ErrUnknownKey
	}

	return len(v.succOrder), nil
}

// InDegree returns the number of distinct predecessors of key.
// Returns ErrUnknownKey if key is absent.
// Complexity: O(1).
func (g *Graph[K, V]) InDegree(key K) (int, error) {
	v, ok := g.vertices[key]
	if !ok {
		return 0, ErrUnknownKey
	}

	return len(v.predOrder), nil
}

// SelfLooped reports whether any self-loop edge was ever added.
// The flag is sticky: once true it stays true for the graph's lifetime.
// Complexity: O(1).
func (g *Graph[K, V]) SelfLooped() bool {
	return g.directCyclic
}
