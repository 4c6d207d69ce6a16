// This file declares Vertex, Graph, sentinel errors, and the NewGraph
// constructor. Mutation and query methods live in methods_vertices.go,
// methods_edges.go, and methods_adjacent.go.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateKey indicates an attempt to add a vertex whose key
	// already exists in the graph.
	ErrDuplicateKey = errors.New("core: duplicate vertex key")

	// ErrUnknownKey indicates an operation referenced a vertex key that
	// has not been added to the graph.
	ErrUnknownKey = errors.New("core: unknown vertex key")
)

// Vertex is a node record: a unique key, an opaque payload, and two
// adjacency sets (successors and predecessors).
//
// Adjacency is stored twice per direction: a set for O(1) membership and
// dedupe, and a slice preserving insertion order for deterministic
// iteration. For any edge src→dst the graph keeps dst in src's successors
// and src in dst's predecessors; the two views are always symmetric.
type Vertex[K comparable, V any] struct {
	// Key uniquely identifies this Vertex within its Graph.
	Key K

	// Value is an arbitrary payload associated with the key.
	// No graph behavior depends on it.
	Value V

	succSet   map[K]struct{} // membership mirror of succOrder
	succOrder []K            // successor keys in insertion order
	predSet   map[K]struct{} // membership mirror of predOrder
	predOrder []K            // predecessor keys in insertion order
}

// newVertex allocates a Vertex with empty adjacency.
func newVertex[K comparable, V any](key K, value V) *Vertex[K, V] {
	return &Vertex[K, V]{
		Key:     key,
		Value:   value,
		succSet: make(map[K]struct{}),
		predSet: make(map[K]struct{}),
	}
}

// linkTo records the edge v→other on both endpoints.
// Idempotent: an already-present edge leaves both views unchanged.
func (v *Vertex[K, V]) linkTo(other *Vertex[K, V]) {
	if _, ok := v.succSet[other.Key]; !ok {
		v.succSet[other.Key] = struct{}{}
		v.succOrder = append(v.succOrder, other.Key)
	}
	if _, ok := other.predSet[v.Key]; !ok {
		other.predSet[v.Key] = struct{}{}
		other.predOrder = append(other.predOrder, v.Key)
	}
}

// Graph is a generic directed graph keyed by K with vertex payloads of
// type V. The zero value is not usable — construct with NewGraph.
//
// Graph is not safe for concurrent use; see the package documentation.
type Graph[K comparable, V any] struct {
	vertices map[K]*Vertex[K, V] // key → vertex
	order    []K                 // keys in insertion order

	// directCyclic is set the moment a self-loop edge is added and is
	// never reset. Cheap short-circuit for cycle detection.
	directCyclic bool
}

// NewGraph creates an empty directed Graph.
// Complexity: O(1).
func NewGraph[K comparable, V any]() *Graph[K, V] {
	return &Graph[K, V]{
		vertices: make(map[K]*Vertex[K, V]),
	}
}
