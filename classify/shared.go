package classify

import "github.com/katalvlaran/deadstate/digraph"

// livePropagate runs the shared backward-DFS Live propagation every
// algorithm uses (spec section 4.2): if v is Live, every vertex in v's
// backward cone that is not already Live becomes Live. isLive and
// setLive let each algorithm plug in its own label storage, since each
// keeps a different node type as the digraph's generic label.
func livePropagate[T any](g *digraph.Graph[int, T], v int, isLive func(int) bool, setLive func(int)) {
	if !isLive(v) {
		return
	}
	newlyLive := g.DFSBck([]int{v}, func(u int) bool { return !isLive(u) })
	for _, u := range newlyLive {
		setLive(u)
	}
}
