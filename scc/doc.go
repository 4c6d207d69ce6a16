// Package scc computes strongly connected components of a core.Graph via
// Tarjan's algorithm and answers the question that motivates it: is the
// graph cyclic?
//
// A graph is cyclic iff it has a self-loop or any SCC has more than one
// member — equivalently, iff the number of SCCs is strictly less than the
// number of vertices (a DAG's SCCs are all singletons). IsCyclic checks
// the sticky self-loop flag first and runs the full partition only when
// that fast path does not apply.
//
// Determinism:
//
//	By default roots and successors are visited in insertion order, so
//	repeated calls on an unchanged graph produce identical output.
//	WithShuffle randomizes both the root order and each vertex's
//	successor order per call; the cyclic/acyclic answer and the SCC
//	membership are invariant to this shuffling — a correctness property
//	the test suite exploits, not a performance feature.
//
// Recursion bound:
//
//	The SCC walk is depth-first and recursive: one frame per unvisited
//	vertex along a path. Go cannot recover a true stack overflow, so the
//	walker counts depth and fails with ErrDepthLimit once the configured
//	limit (DefaultMaxDepth unless overridden) is exceeded. The failed
//	call leaves the graph untouched — all Tarjan state is per-call and
//	discarded afterward. WithMaxDepth(NoDepthLimit) removes the guard for
//	callers who accept the host stack as the bound.
//
// Complexity:
//
//   - Time:   O(V + E) per call (plus O(V) shuffling when enabled)
//   - Memory: O(V) for the index map, on-path stack, and recursion
//
// Errors:
//
//	ErrNilGraph   – nil *core.Graph passed to Components or IsCyclic
//	ErrDepthLimit – the recursive walk exceeded the configured depth
package scc
