package classify

import "github.com/katalvlaran/deadstate/digraph"

// Simple improves on Naive by collapsing closed cycles into one
// canonical vertex via union-find, then running a topological peeling
// search instead of a full recompute. Grounded on simple.rs, adapted
// from its HashSet/PartitionVec construction to digraph's built-in
// union-find merge and topological search.
type Simple struct {
	g *digraph.Graph[int, Status]
}

// NewSimple creates an empty Simple classifier.
func NewSimple() *Simple {
	return &Simple{g: digraph.New[int, Status]()}
}

func (a *Simple) ensure(v int) {
	a.g.EnsureVertex(v, StatusOpen)
}

func (a *Simple) status(v int) Status {
	st, _ := a.g.GetLabel(v)
	return st
}

func (a *Simple) isClosed(v int) bool {
	return a.status(v) != StatusOpen
}

func (a *Simple) AddTransition(u, v int) {
	a.ensure(u)
	a.ensure(v)
	st := a.status(u)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.g.EnsureEdge(u, v)
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.g.OverwriteLabel(x, StatusLive) })
}

func (a *Simple) MarkClosed(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if st == StatusLive {
		return
	}
	a.g.OverwriteLabel(v, StatusUnknown)
	a.mergeAllCycles(v)
	a.checkDead(v)
}

func (a *Simple) MarkLive(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.g.OverwriteLabel(v, StatusLive)
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.g.OverwriteLabel(x, StatusLive) })
}

func (a *Simple) NotReachable(v1, v2 int) {}

func (a *Simple) GetStatus(v int) (Status, bool) {
	if !a.g.IsSeen(v) {
		return 0, false
	}
	return a.status(v), true
}

func (a *Simple) GetSpace() int64 { return a.g.GetSpace() }
func (a *Simple) GetTime() int64  { return a.g.GetTime() }

func (a *Simple) SeenIdentifiers() []int { return a.g.IterSeenIdentifiers() }

// mergeAllCycles collapses every closed vertex that lies on a cycle
// through v into v's canonical class: the forward-closed-reachable set
// intersected with the backward-closed-reachable set is exactly the
// set of vertices mutually reachable with v via closed-only edges.
func (a *Simple) mergeAllCycles(v int) {
	closedOnly := func(x int) bool { return a.isClosed(x) }
	fwd := a.g.DFSFwd([]int{v}, closedOnly)
	bck := a.g.DFSBck([]int{v}, closedOnly)

	bckSet := make(map[int]bool, len(bck))
	for _, u := range bck {
		bckSet[u] = true
	}

	for _, u := range fwd {
		if !bckSet[u] {
			continue
		}
		if a.g.IsSameVertex(u, v) {
			continue
		}
		a.g.MergeUsing(v, u, func(loser, survivor Status) Status { return StatusUnknown })
	}
}

// checkDead runs the topological peeling search from v over closed
// vertices other than Live ones (Live is terminal), promoting every
// vertex it yields to Dead.
func (a *Simple) checkDead(v int) {
	notLiveClosed := func(u int) bool { return a.isClosed(u) && a.status(u) != StatusLive }
	yielded := a.g.TopoSearchBck([]int{v}, notLiveClosed, func(w int) bool { return a.status(w) != StatusDead })
	for _, u := range yielded {
		a.g.OverwriteLabel(u, StatusDead)
	}
}
