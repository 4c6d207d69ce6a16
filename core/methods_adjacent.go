// Traversal queries: direct adjacency and transitive closures.
//
// The closure walks are plain reachability computations — an explicit
// work-list with a visited set, O(V+E) per call, nothing cached. Any
// mutation "invalidates" nothing because nothing is memoized.

package core

// DirectSuccessors returns the immediate successors of key in insertion
// order. Returns ErrUnknownKey if key is absent.
// The returned slice is a copy; callers may modify it freely.
// Complexity: O(deg).
func (g *Graph[K, V]) DirectSuccessors(key K) ([]K, error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrUnknownKey
	}
	out := make([]K, len(v.succOrder))
	copy(out, v.succOrder)

	return out, nil
}

// DirectPredecessors returns the immediate predecessors of key in
// insertion order. Returns ErrUnknownKey if key is absent.
// The returned slice is a copy; callers may modify it freely.
// Complexity: O(deg).
func (g *Graph[K, V]) DirectPredecessors(key K) ([]K, error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrUnknownKey
	}
	out := make([]K, len(v.predOrder))
	copy(out, v.predOrder)

	return out, nil
}

// AllSuccessors returns every vertex reachable from key by following one
// or more successor edges — the transitive closure, excluding key itself
// even when a cycle leads back to it. The result order is unspecified.
// Returns ErrUnknownKey if key is absent.
// Complexity: O(V+E), recomputed on every call.
func (g *Graph[K, V]) AllSuccessors(key K) ([]K, error) {
	return g.closure(key, func(v *Vertex[K, V]) []K { return v.succOrder })
}

// AllPredecessors returns every vertex that reaches key by following one
// or more predecessor edges — the transitive closure, excluding key
// itself even when a cycle leads back to it. The result order is
// unspecified. Returns ErrUnknownKey if key is absent.
// Complexity: O(V+E), recomputed on every call.
func (g *Graph[K, V]) AllPredecessors(key K) ([]K, error) {
	return g.closure(key, func(v *Vertex[K, V]) []K { return v.predOrder })
}

// closure computes the reachable set from key along the adjacency
// direction selected by next, via an explicit work-list stack and a
// visited set so each vertex is expanded at most once.
func (g *Graph[K, V]) closure(key K, next func(*Vertex[K, V]) []K) ([]K, error) {
	// 1) The start vertex must exist.
	start, ok := g.vertices[key]
	if !ok {
		return nil, ErrUnknownKey
	}

	// 2) Seed the work-list with the direct neighbors.
	worklist := make([]K, len(next(start)))
	copy(worklist, next(start))

	visited := make(map[K]struct{}, len(g.vertices))
	var result []K

	// 3) Expand until the work-list drains; each vertex at most once.
	for len(worklist) > 0 {
		elem := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if _, seen := visited[elem]; seen {
			continue
		}
		visited[elem] = struct{}{}

		// The start vertex never appears in its own closure.
		if elem != key {
			result = append(result, elem)
		}

		worklist = append(worklist, next(g.vertices[elem])...)
	}

	return result, nil
}
