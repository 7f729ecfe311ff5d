package classify

import (
	"math"

	"github.com/katalvlaran/deadstate/digraph"
)

// bfgtNode is the per-canonical-vertex label BFGT attaches to the
// shared digraph: its classification status plus its pseudo-
// topological level (monotone non-decreasing along every edge).
type bfgtNode struct {
	Status Status
	Level  int
}

// BFGT implements the Bender-Fineman-Gilbert-Tarjan incremental cycle
// detector (spec section 4.5), grounded on algorithm/bfgt.rs. Each
// vertex's out-edges are buffered until it closes; integrating
// them one at a time adjusts pseudo-topological levels and, on
// detecting a cycle, merges the implicated vertices into one canonical
// class -- bounding the backward search radius by
// delta = floor(sqrt(edge count)) keeps the amortized cost low.
type BFGT struct {
	g           *digraph.Graph[int, bfgtNode]
	pendingFwd  map[int][]int
	edgeCounter int
}

// NewBFGT creates an empty BFGT classifier.
func NewBFGT() *BFGT {
	return &BFGT{
		g:          digraph.New[int, bfgtNode](),
		pendingFwd: make(map[int][]int),
	}
}

func (a *BFGT) ensure(v int) {
	a.g.EnsureVertex(v, bfgtNode{Status: StatusOpen})
}

func (a *BFGT) node(v int) bfgtNode {
	n, _ := a.g.GetLabel(v)
	return n
}

func (a *BFGT) status(v int) Status { return a.node(v).Status }
func (a *BFGT) level(v int) int     { return a.node(v).Level }

func (a *BFGT) setStatus(v int, st Status) {
	n := a.node(v)
	n.Status = st
	a.g.OverwriteLabel(v, n)
}

func (a *BFGT) setLevel(v int, lvl int) {
	n := a.node(v)
	n.Level = lvl
	a.g.OverwriteLabel(v, n)
}

func (a *BFGT) delta() int {
	return int(math.Sqrt(float64(a.edgeCounter)))
}

func (a *BFGT) AddTransition(u, v int) {
	a.ensure(u)
	a.ensure(v)
	st := a.status(u)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if a.g.IsSameVertex(u, v) {
		return
	}
	a.pendingFwd[u] = append(a.pendingFwd[u], v)
	a.g.EnsureEdgeBck(u, v)
	a.edgeCounter++
	a.calculateNewLiveStates(v)
}

func (a *BFGT) MarkClosed(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if st == StatusLive {
		return
	}
	a.setStatus(v, StatusUnknown)

	pending := a.pendingFwd[v]
	delete(a.pendingFwd, v)
	for _, w := range pending {
		a.g.EnsureEdgeFwd(v, w)
		a.updateLevels(v, w)
	}
	a.checkDead(v)
}

func (a *BFGT) MarkLive(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.setStatus(v, StatusLive)
	a.calculateNewLiveStates(v)
}

func (a *BFGT) NotReachable(v1, v2 int) {}

func (a *BFGT) GetStatus(v int) (Status, bool) {
	if !a.g.IsSeen(v) {
		return 0, false
	}
	return a.status(v), true
}

func (a *BFGT) GetSpace() int64 { return a.g.GetSpace() + int64(a.edgeCounter) }
func (a *BFGT) GetTime() int64  { return a.g.GetTime() }

func (a *BFGT) SeenIdentifiers() []int { return a.g.IterSeenIdentifiers() }

// updateLevels integrates the freshly-closed edge v1 -> v2 into the
// pseudo-topological level assignment, merging a cycle's vertices into
// one canonical class if one is found. See spec section 4.5 for the
// four numbered steps this mirrors.
func (a *BFGT) updateLevels(v1, v2 int) {
	if a.g.IsSameVertex(v1, v2) {
		return
	}
	level1 := a.level(v1)
	level2 := a.level(v2)
	if level1 < level2 {
		return
	}

	// Step 2: bounded backward search from v1, restricted to Unknown
	// vertices at exactly level1, for up to delta distinct vertices.
	delta := a.delta()
	setBck := map[int]bool{v1: true}
	foundCycle := false
	count := 0
	visited := map[int]bool{v1: true}
	frontier := []int{v1}
	for len(frontier) > 0 && count < delta {
		x := frontier[0]
		frontier = frontier[1:]
		for _, u := range a.g.IterBckEdges(x) {
			if count >= delta {
				break
			}
			if visited[u] {
				continue
			}
			if !(a.status(u) == StatusUnknown && a.level(u) == level1) {
				continue
			}
			visited[u] = true
			setBck[u] = true
			count++
			if a.g.IsSameVertex(u, v2) {
				foundCycle = true
			}
			frontier = append(frontier, u)
		}
	}

	// Step 3: if the backward search was cut off, or v2's level is
	// too low, raise v2's level (and everything forward of it that
	// needs raising) to catch up with v1.
	if count == delta || level2 < level1 {
		newLevel := level1
		if count == delta {
			newLevel = level1 + 1
		}
		a.setLevel(v2, newLevel)
		toRaise := a.g.DFSFwd([]int{v2}, func(w int) bool {
			return setBck[w] || a.level(w) < newLevel
		})
		for _, w := range toRaise {
			if setBck[w] {
				foundCycle = true
			}
			a.setLevel(w, newLevel)
		}
	}

	// Step 4: a cycle was found -- collect the forward-reachable set
	// from v2 at the fixed level, intersect with what's
	// backward-reachable from v1 within that set, and merge it all
	// into v1's canonical class.
	if !foundCycle {
		return
	}
	v1c := a.g.GetCanonVertex(v1)
	v2c := a.g.GetCanonVertex(v2)
	fixedLevel := a.level(v1c)

	fwdSet := map[int]bool{v2c: true}
	for _, w := range a.g.DFSFwd([]int{v2c}, func(w int) bool { return a.level(w) == fixedLevel }) {
		fwdSet[w] = true
	}
	biReachable := a.g.DFSBck([]int{v1c}, func(u int) bool { return fwdSet[u] })
	for _, u := range biReachable {
		if a.g.IsSameVertex(u, v1c) {
			continue
		}
		a.g.MergeUsing(v1c, u, func(loser, survivor bfgtNode) bfgtNode {
			return bfgtNode{Status: StatusUnknown, Level: fixedLevel}
		})
	}
}

// checkDead runs the shared topological peeling search over Unknown
// vertices, stopping at Dead or Live ones, and promotes every vertex
// it yields to Dead.
func (a *BFGT) checkDead(v int) {
	isUnknownOrDead := func(u int) bool {
		st := a.status(u)
		return st == StatusUnknown || st == StatusDead
	}
	notDead := func(w int) bool { return a.status(w) != StatusDead }
	for _, u := range a.g.TopoSearchBck([]int{v}, isUnknownOrDead, notDead) {
		a.setStatus(u, StatusDead)
	}
}

func (a *BFGT) calculateNewLiveStates(v int) {
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.setStatus(x, StatusLive) })
}
