// Vertex lifecycle and key/value queries for Graph.

package core

// AddVertex inserts a new vertex with the zero payload.
// Returns ErrDuplicateKey if key is already present; the graph is left
// unchanged on failure.
// Complexity: O(1).
func (g *Graph[K, V]) AddVertex(key K) error {
	var zero V

	return g.AddVertexWithValue(key, zero)
}

// AddVertexWithValue inserts a new vertex carrying value.
// Returns ErrDuplicateKey if key is already present — there is no
// update-in-place for an existing key through this interface.
// Complexity: O(1).
func (g *Graph[K, V]) AddVertexWithValue(key K, value V) error {
	// 1) Validate before any mutation: duplicate keys are rejected whole.
	if _, exists := g.vertices[key]; exists {
		return ErrDuplicateKey
	}

	// 2) Insert and record insertion order for deterministic iteration.
	g.vertices[key] = newVertex[K, V](key, value)
	g.order = append(g.order, key)

	return nil
}

// Value returns the payload stored under key.
// Returns ErrUnknownKey if key has not been added.
// Complexity: O(1).
func (g *Graph[K, V]) Value(key K) (V, error) {
	v, ok := g.vertices[key]
	if !ok {
		var zero V
		return zero, ErrUnknownKey
	}

	return v.Value, nil
}

// HasVertex reports whether key is present in the graph.
// Complexity: O(1).
func (g *Graph[K, V]) HasVertex(key K) bool {
	_, ok := g.vertices[key]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[K, V]) VertexCount() int {
	return len(g.vertices)
}

// Keys returns all vertex keys in insertion order.
// The returned slice is a copy; callers may modify it freely.
// Complexity: O(V).
func (g *Graph[K, V]) Keys() []K {
	keys := make([]K, len(g.order))
	copy(keys, g.order)

	return keys
}
