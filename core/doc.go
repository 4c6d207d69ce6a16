// Package core provides a generic, in-memory directed Graph built for
// dependency modeling: vertices carry caller-supplied keys and opaque
// payloads, and every edge is mirrored in both the source's successor set
// and the destination's predecessor set.
//
// The Graph G = (V,E) keeps a deliberately small contract:
//
//   - Vertices are identified solely by their key (any comparable type);
//     keys must stay immutable for the graph's lifetime.
//   - Edges connect existing vertices only, and adding one is O(1).
//     Re-adding an existing edge is a silent no-op (set semantics).
//   - A self-loop (src == dst) flips a sticky fast-path flag so cycle
//     detection can short-circuit without a full traversal.
//   - Vertices are never removed — the graph only grows.
//   - Adjacency preserves insertion order, so default traversal order is
//     deterministic without sorting (keys need not be ordered types).
//
// Edge direction convention: AddEdge(dst, src) records the edge src→dst,
// i.e. "src produces an edge that lands on dst". This matches the
// dependency reading "dst depends on src" used throughout the package.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(key K) error                    // O(1)
//	AddVertexWithValue(key K, value V) error  // O(1), no update-in-place
//	HasVertex(key K) bool                     // O(1)
//	Value(key K) (V, error)                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(dst, src K) error                 // O(1), edge src→dst
//	AddEdges(dst K, srcs ...K) error          // O(len(srcs))
//	HasEdge(dst, src K) bool                  // O(1)
//
//	// Query
//	Keys() []K                                // O(V), insertion order
//	VertexCount() int                         // O(1)
//	OutDegree(key K) (int, error)             // O(1)
//	InDegree(key K) (int, error)              // O(1)
//	SelfLooped() bool                         // O(1)
//	DirectSuccessors(key K) ([]K, error)      // O(deg)
//	DirectPredecessors(key K) ([]K, error)    // O(deg)
//	AllSuccessors(key K) ([]K, error)         // O(V+E), recomputed per call
//	AllPredecessors(key K) ([]K, error)       // O(V+E), recomputed per call
//
// Errors:
//
//	ErrDuplicateKey – adding a vertex whose key already exists
//	ErrUnknownKey   – referencing a key that has not been added
//
// Concurrency: Graph is not safe for concurrent use. Mutation and queries
// share the adjacency structures with no internal synchronization; callers
// owning a shared graph must serialize access externally.
package core
