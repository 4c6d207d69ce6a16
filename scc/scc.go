// Tarjan's strongly-connected-components algorithm over core.Graph.
//
// The walk keeps all of its working state in an explicit walker struct —
// discovery counter, index/low-link map, on-path unique stack, result
// list — passed through the recursion rather than captured by closures.

package scc

import (
	"math/rand"

	"github.com/katalvlaran/dagraph/core"
	"github.com/katalvlaran/dagraph/stack"
)

// vertexState holds the per-vertex Tarjan bookkeeping: the discovery
// index is assigned once; the low-link only ever decreases.
type vertexState struct {
	index   int
	lowLink int
}

// walker carries the transient state of one SCC computation.
type walker[K comparable, V any] struct {
	graph *core.Graph[K, V]
	opts  Options
	rng   *rand.Rand

	next  int               // global discovery counter
	state map[K]vertexState // presence ⇒ visited
	path  *stack.Unique[K]  // open recursion path
	comps [][]K             // completed components
}

// Components partitions g's vertices into strongly connected components.
// Each component is an unordered list of vertex keys; every vertex
// appears in exactly one component. Roots are visited in insertion order
// unless WithShuffle is given.
//
// Returns ErrNilGraph for a nil graph and ErrDepthLimit if the recursive
// walk exceeds the configured depth; on any error the graph itself is
// untouched (the walk never mutates it).
// Complexity: O(V+E).
func Components[K comparable, V any](g *core.Graph[K, V], opts ...Option) ([][]K, error) {
	// 1) Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3) Build the per-call walker; nothing survives past the return.
	w := &walker[K, V]{
		graph: g,
		opts:  o,
		state: make(map[K]vertexState, g.VertexCount()),
		path:  stack.NewUnique[K](),
	}
	if o.Shuffle {
		w.rng = rngFromSeed(o.Seed)
	}

	// 4) Iterate all vertices as roots to cover disconnected subgraphs.
	roots := g.Keys()
	if o.Shuffle {
		shuffleKeysInPlace(roots, w.rng)
	}
	for _, root := range roots {
		if _, visited := w.state[root]; !visited {
			if err := w.strongConnect(root, 0); err != nil {
				return nil, err
			}
		}
	}

	return w.comps, nil
}

// IsCyclic reports whether g contains a directed cycle.
//
// A sticky self-loop flag answers the trivial case without traversal;
// otherwise the graph is cyclic iff its SCC count is strictly less than
// its vertex count. Accepts the same options as Components.
// Complexity: O(1) on the self-loop fast path, O(V+E) otherwise.
func IsCyclic[K comparable, V any](g *core.Graph[K, V], opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}

	// Fast path: a self-loop is a cycle regardless of the rest.
	if g.SelfLooped() {
		return true, nil
	}

	comps, err := Components(g, opts...)
	if err != nil {
		return false, err
	}

	return len(comps) < g.VertexCount(), nil
}

// strongConnect runs the standard Tarjan recurrence rooted at v.
// depth counts recursion frames from the root; crossing the configured
// limit aborts the whole computation with ErrDepthLimit.
func (w *walker[K, V]) strongConnect(v K, depth int) error {
	// 1) Depth guard: fail loudly instead of exhausting the call stack.
	if w.opts.MaxDepth != NoDepthLimit && depth > w.opts.MaxDepth {
		return ErrDepthLimit
	}

	// 2) Assign discovery index and low-link, then open v on the path.
	w.state[v] = vertexState{index: w.next, lowLink: w.next}
	w.next++
	if err := w.path.Push(v); err != nil {
		// Unreachable: v was unvisited, so it cannot be on the path.
		return err
	}

	// 3) Examine each successor of v.
	succs, err := w.graph.DirectSuccessors(v)
	if err != nil {
		// Unreachable: v came from the graph's own key set.
		return err
	}
	if w.opts.Shuffle {
		shuffleKeysInPlace(succs, w.rng)
	}
	for _, s := range succs {
		st, visited := w.state[s]
		switch {
		case !visited:
			// 3a) Tree edge: recurse, then fold the child's low-link.
			if err = w.strongConnect(s, depth+1); err != nil {
				return err
			}
			if child := w.state[s]; child.lowLink < w.state[v].lowLink {
				vs := w.state[v]
				vs.lowLink = child.lowLink
				w.state[v] = vs
			}
		case w.path.Contains(s):
			// 3b) Back edge to the open path: fold s's discovery index.
			if st.index < w.state[v].lowLink {
				vs := w.state[v]
				vs.lowLink = st.index
				w.state[v] = vs
			}
		default:
			// 3c) s belongs to an already-closed SCC: no update.
		}
	}

	// 4) v is the root of a completed SCC when its low-link never sank
	//    below its own discovery index: pop the path down to v inclusive.
	if st := w.state[v]; st.lowLink == st.index {
		var comp []K
		for {
			u, popErr := w.path.Pop()
			if popErr != nil {
				// Unreachable: v itself is still on the path.
				return popErr
			}
			comp = append(comp, u)
			if u == v {
				break
			}
		}
		w.comps = append(w.comps, comp)
	}

	return nil
}
