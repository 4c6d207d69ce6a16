package scc_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagraph/core"
	"github.com/katalvlaran/dagraph/scc"
)

// buildHalvingTree creates the tree-shaped graph where vertex i (i>0) has
// an edge to vertex i/2: 1→0, 2→1, 3→1, 4→2, ... for i in [1,n).
func buildHalvingTree(t *testing.T, n int) *core.Graph[int, any] {
	t.Helper()
	g := core.NewGraph[int, any]()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 1; i < n; i++ {
		// Edge i→i/2.
		require.NoError(t, g.AddEdge(i/2, i))
	}

	return g
}

// addTriangle wires the 3-cycle a→b→c→a onto fresh vertices.
func addTriangle(t *testing.T, g *core.Graph[string, any]) {
	t.Helper()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(k))
	}
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("c", "b"))
	require.NoError(t, g.AddEdge("a", "c"))
}

// canonical sorts each component and then the component list, producing a
// comparable representation of an SCC partition.
func canonical(comps [][]int) [][]int {
	out := make([][]int, len(comps))
	for i, c := range comps {
		cc := make([]int, len(c))
		copy(cc, c)
		sort.Ints(cc)
		out[i] = cc
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// TestIsCyclic_NilGraph verifies the nil-graph sentinel.
func TestIsCyclic_NilGraph(t *testing.T) {
	var g *core.Graph[string, any]

	_, err := scc.IsCyclic(g)
	assert.ErrorIs(t, err, scc.ErrNilGraph)

	_, err = scc.Components(g)
	assert.ErrorIs(t, err, scc.ErrNilGraph)
}

// TestIsCyclic_EmptyGraph verifies an empty graph is acyclic.
func TestIsCyclic_EmptyGraph(t *testing.T) {
	g := core.NewGraph[string, any]()

	cyclic, err := scc.IsCyclic(g)
	require.NoError(t, err)
	assert.False(t, cyclic)
}

// TestIsCyclic_NoEdges verifies a graph with zero edges is never cyclic,
// regardless of vertex count.
func TestIsCyclic_NoEdges(t *testing.T) {
	g := core.NewGraph[int, any]()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddVertex(i))
	}

	cyclic, err := scc.IsCyclic(g)
	require.NoError(t, err)
	assert.False(t, cyclic)
}

// TestIsCyclic_SelfLoop verifies the fast path: a single self-loop makes
// the graph cyclic immediately, independent of everything else.
func TestIsCyclic_SelfLoop(t *testing.T) {
	g := core.NewGraph[string, any]()
	require.NoError(t, g.AddVertex("a"))

	cyclic, err := scc.IsCyclic(g)
	require.NoError(t, err)
	assert.False(t, cyclic)

	require.NoError(t, g.AddEdge("a", "a"))

	cyclic, err = scc.IsCyclic(g)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

// TestIsCyclic_SimpleTriangle verifies a 3-cycle is detected.
func TestIsCyclic_SimpleTriangle(t *testing.T) {
	g := core.NewGraph[string, any]()
	addTriangle(t, g)

	cyclic, err := scc.IsCyclic(g)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

// TestIsCyclic_HalvingTree verifies the 100-vertex halving tree is acyclic,
// and that one back-edge from 99's ancestor chain makes it deterministically
// cyclic under randomized traversal order.
func TestIsCyclic_HalvingTree(t *testing.T) {
	g := buildHalvingTree(t, 100)

	cyclic, err := scc.IsCyclic(g)
	require.NoError(t, err)
	assert.False(t, cyclic)

	// Edge 1→99 closes the loop 99→49→24→12→6→3→1→99.
	require.NoError(t, g.AddEdge(99, 1))

	for i := 0; i < 999; i++ {
		cyclic, err = scc.IsCyclic(g, scc.WithShuffle(), scc.WithSeed(int64(i)))
		require.NoError(t, err)
		assert.True(t, cyclic)
	}
}

// TestIsCyclic_DisconnectedAcyclic verifies the halving tree stays acyclic
// under randomized order, then turns cyclic once a disconnected 3-cycle is
// appended elsewhere in the graph.
func TestIsCyclic_DisconnectedAcyclic(t *testing.T) {
	g := buildHalvingTree(t, 100)

	for i := 0; i < 999; i++ {
		cyclic, err := scc.IsCyclic(g, scc.WithShuffle(), scc.WithSeed(int64(i)))
		require.NoError(t, err)
		assert.False(t, cyclic)
	}

	// A small disconnected cycle 1000→1001→1002→1000.
	for _, k := range []int{1000, 1001, 1002} {
		require.NoError(t, g.AddVertex(k))
	}
	require.NoError(t, g.AddEdge(1001, 1000))
	require.NoError(t, g.AddEdge(1002, 1001))
	require.NoError(t, g.AddEdge(1000, 1002))

	for i := 0; i < 999; i++ {
		cyclic, err := scc.IsCyclic(g, scc.WithShuffle(), scc.WithSeed(int64(i)))
		require.NoError(t, err)
		assert.True(t, cyclic)
	}
}

// TestIsCyclic_DisconnectedChainAndCycle verifies a cyclic component is
// found next to an acyclic disconnected one.
func TestIsCyclic_DisconnectedChainAndCycle(t *testing.T) {
	g := core.NewGraph[string, any]()
	addTriangle(t, g) // a→b→c→a

	// e→f→g is acyclic, and disconnected from the triangle.
	for _, k := range []string{"e", "f", "g"} {
		require.NoError(t, g.AddVertex(k))
	}
	require.NoError(t, g.AddEdge("f", "e"))
	require.NoError(t, g.AddEdge("g", "f"))

	for i := 0; i < 999; i++ {
		cyclic, err := scc.IsCyclic(g, scc.WithShuffle(), scc.WithSeed(int64(i)))
		require.NoError(t, err)
		assert.True(t, cyclic)
	}
}

// TestIsCyclic_OverlappingCycles verifies detection when three cycles share
// vertices:
//
//	 a   e   h      |
//	/ \ / \ / \     |
//	d   b   f   i   |
//	 \ / \ / \ /    |
//	  c   g   j     |
func TestIsCyclic_OverlappingCycles(t *testing.T) {
	g := core.NewGraph[string, any]()
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		require.NoError(t, g.AddVertex(k))
	}

	// a→b→c→d→a
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("c", "b"))
	require.NoError(t, g.AddEdge("d", "c"))
	require.NoError(t, g.AddEdge("a", "d"))

	// e→b→g→f→e
	require.NoError(t, g.AddEdge("b", "e"))
	require.NoError(t, g.AddEdge("g", "b"))
	require.NoError(t, g.AddEdge("f", "g"))
	require.NoError(t, g.AddEdge("e", "f"))

	// h→f→j→i→h (wired via i→h, h→... as in the shape above)
	require.NoError(t, g.AddEdge("f", "h"))
	require.NoError(t, g.AddEdge("h", "i"))
	require.NoError(t, g.AddEdge("i", "j"))
	require.NoError(t, g.AddEdge("j", "f"))

	for i := 0; i < 999; i++ {
		cyclic, err := scc.IsCyclic(g, scc.WithShuffle(), scc.WithSeed(int64(i)))
		require.NoError(t, err)
		assert.True(t, cyclic)
	}
}

// TestComponents_Partition verifies SCC membership: the triangle collapses
// into one component, the isolated vertex stays a singleton.
func TestComponents_Partition(t *testing.T) {
	g := core.NewGraph[string, any]()
	addTriangle(t, g)
	require.NoError(t, g.AddVertex("solo"))

	comps, err := scc.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{3, 1}, sizes)

	for _, c := range comps {
		if len(c) == 3 {
			assert.ElementsMatch(t, []string{"a", "b", "c"}, c)
		} else {
			assert.Equal(t, []string{"solo"}, c)
		}
	}
}

// TestComponents_DAGAllSingletons verifies a DAG partitions into exactly
// one singleton per vertex.
func TestComponents_DAGAllSingletons(t *testing.T) {
	g := buildHalvingTree(t, 100)

	comps, err := scc.Components(g)
	require.NoError(t, err)
	assert.Len(t, comps, 100)
	for _, c := range comps {
		assert.Len(t, c, 1)
	}
}

// TestComponents_ShuffleInvariance verifies the SCC partition itself is
// invariant to traversal-order randomization.
func TestComponents_ShuffleInvariance(t *testing.T) {
	g := buildHalvingTree(t, 64)
	// Close one loop: edge 1→63.
	require.NoError(t, g.AddEdge(63, 1))

	base, err := scc.Components(g)
	require.NoError(t, err)
	want := canonical(base)

	for seed := int64(1); seed <= 100; seed++ {
		comps, err := scc.Components(g, scc.WithShuffle(), scc.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, want, canonical(comps), "seed %d changed the partition", seed)
	}
}

// TestIsCyclic_DeepChainDepthLimit verifies a chain longer than the default
// recursion limit fails with ErrDepthLimit instead of misreporting, and
// that lifting the limit lets the same graph be classified.
func TestIsCyclic_DeepChainDepthLimit(t *testing.T) {
	n := 9999
	g := core.NewGraph[int, any]()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 1; i < n; i++ {
		// Edge i-1→i: the walk from root 0 descends the full chain.
		require.NoError(t, g.AddEdge(i, i-1))
	}

	_, err := scc.IsCyclic(g)
	assert.ErrorIs(t, err, scc.ErrDepthLimit)

	// The graph itself is untouched by the failed pass.
	assert.Equal(t, n, g.VertexCount())
	assert.False(t, g.SelfLooped())

	// Without the guard the chain classifies as acyclic.
	cyclic, err := scc.IsCyclic(g, scc.WithMaxDepth(scc.NoDepthLimit))
	require.NoError(t, err)
	assert.False(t, cyclic)
}

// TestComponents_CustomDepthLimit verifies WithMaxDepth applies to
// Components as well.
func TestComponents_CustomDepthLimit(t *testing.T) {
	g := core.NewGraph[int, any]()
	for i := 0; i < 200; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 1; i < 200; i++ {
		require.NoError(t, g.AddEdge(i, i-1))
	}

	_, err := scc.Components(g, scc.WithMaxDepth(100))
	assert.ErrorIs(t, err, scc.ErrDepthLimit)

	comps, err := scc.Components(g, scc.WithMaxDepth(500))
	require.NoError(t, err)
	assert.Len(t, comps, 200)
}

// TestIsCyclic_RepeatedCallsFreshState verifies nothing is memoized: a
// mutation between calls changes the answer with no stale caching.
func TestIsCyclic_RepeatedCallsFreshState(t *testing.T) {
	g := core.NewGraph[string, any]()
	for _, k := range []string{"a", "b"} {
		require.NoError(t, g.AddVertex(k))
	}
	require.NoError(t, g.AddEdge("b", "a"))

	cyclic, err := scc.IsCyclic(g)
	require.NoError(t, err)
	assert.False(t, cyclic)

	// Closing the 2-cycle flips the next call's answer.
	require.NoError(t, g.AddEdge("a", "b"))

	cyclic, err = scc.IsCyclic(g)
	require.NoError(t, err)
	assert.True(t, cyclic)
}
