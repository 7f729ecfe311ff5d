package digraph_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/deadstate/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntGraph() *digraph.Graph[int, string] {
	return digraph.New[int, string]()
}

func TestEnsureVertexIdempotent(t *testing.T) {
	g := newIntGraph()
	assert.False(t, g.IsSeen(1))
	g.EnsureVertex(1, "a")
	assert.True(t, g.IsSeen(1))
	g.EnsureVertex(1, "b")
	label, ok := g.GetLabel(1)
	require.True(t, ok)
	assert.Equal(t, "a", label, "re-ensuring an existing vertex must not overwrite its label")
}

func TestSelfEdgeDropped(t *testing.T) {
	g := newIntGraph()
	g.EnsureVertex(1, "")
	g.EnsureEdge(1, 1)
	assert.Empty(t, g.IterFwdEdges(1))
	assert.Empty(t, g.IterBckEdges(1))
}

func TestEdgesAndIteration(t *testing.T) {
	g := newIntGraph()
	for i := 0; i < 3; i++ {
		g.EnsureVertex(i, "")
	}
	g.EnsureEdge(0, 1)
	g.EnsureEdge(0, 2)

	fwd := g.IterFwdEdges(0)
	sort.Ints(fwd)
	assert.Equal(t, []int{1, 2}, fwd)

	bck1 := g.IterBckEdges(1)
	assert.Equal(t, []int{0}, bck1)
}

func TestMergeCombinesAdjacencyAndLabel(t *testing.T) {
	g := newIntGraph()
	for i := 0; i < 4; i++ {
		g.EnsureVertex(i, "")
	}
	// 0 -> 1 -> 2, and a separate 3 -> 1
	g.EnsureEdge(0, 1)
	g.EnsureEdge(1, 2)
	g.EnsureEdge(3, 1)

	g.MergeUsing(0, 2, func(loser, survivor string) string { return loser + survivor })
	assert.True(t, g.IsSameVertex(0, 2))

	merged := g.GetCanonVertex(0)
	fwd := g.IterFwdEdges(merged)
	sort.Ints(fwd)
	// merged vertex keeps an edge to 1 from its former self (0->1); the
	// other former self's (2's) own out-edges are empty, so the union
	// is just {1}. The edge 1->2 is now internal to nobody (1 remains
	// distinct) and is unaffected.
	assert.Equal(t, []int{1}, fwd)

	bckOfOne := g.IterBckEdges(1)
	sort.Ints(bckOfOne)
	assert.ElementsMatch(t, []int{merged, 3}, bckOfOne)
}

func TestMergeNoOpOnSameVertex(t *testing.T) {
	g := newIntGraph()
	g.EnsureVertex(1, "x")
	called := false
	g.MergeUsing(1, 1, func(loser, survivor string) string {
		called = true
		return survivor
	})
	assert.False(t, called)
}

func TestDFSFwdExcludesSourcesAndRespectsFilter(t *testing.T) {
	g := newIntGraph()
	for i := 0; i < 5; i++ {
		g.EnsureVertex(i, "")
	}
	g.EnsureEdge(0, 1)
	g.EnsureEdge(1, 2)
	g.EnsureEdge(2, 3)
	g.EnsureEdge(3, 4)

	all := func(int) bool { return true }
	reached := g.DFSFwd([]int{0}, all)
	sort.Ints(reached)
	assert.Equal(t, []int{1, 2, 3, 4}, reached)

	stopAt3 := func(v int) bool { return v != 3 }
	reached = g.DFSFwd([]int{0}, stopAt3)
	sort.Ints(reached)
	assert.Equal(t, []int{1, 2}, reached)
}

func TestTopoSearchBckPeelsLineFromTheEnd(t *testing.T) {
	g := newIntGraph()
	for i := 0; i < 4; i++ {
		g.EnsureVertex(i, "")
	}
	// 0 -> 1 -> 2 -> 3, all closed candidates.
	g.EnsureEdge(0, 1)
	g.EnsureEdge(1, 2)
	g.EnsureEdge(2, 3)

	all := func(int) bool { return true }
	out := g.TopoSearchBck([]int{3}, all, all)
	assert.Equal(t, []int{3, 2, 1, 0}, out, "peeling must proceed from the sink backward")
}

func TestTopoSearchBckStopsAtUnreadyVertex(t *testing.T) {
	g := newIntGraph()
	for i := 0; i < 3; i++ {
		g.EnsureVertex(i, "")
	}
	g.EnsureEdge(0, 1)
	// 1 has no recorded out-edge, so it is "ready" on its own, but 0
	// depends on it. Vertex 2 is unrelated.
	all := func(int) bool { return true }
	out := g.TopoSearchBck([]int{0}, all, all)
	// 0 is not ready until 1 is yielded, but 1 was never a candidate
	// and 0 has no backward edges leading to it, so nothing yields.
	assert.Empty(t, out)

	out = g.TopoSearchBck([]int{1}, all, all)
	assert.Equal(t, []int{1, 0}, out)
}
