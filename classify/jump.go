package classify

import "github.com/katalvlaran/deadstate/digraph"

// jumpNode is Jump's per-canonical-vertex label: a jump list (nonempty
// once the vertex has been classified Unknown; the i-th entry reaches
// roughly 2^i edges forward toward the unique Open root this vertex's
// successor chain currently points to) and a reserve list (an Open
// vertex's out-edges not yet folded into the jump structure).
type jumpNode struct {
	Status Status
	Jumps  []int
	Reserve []int
}

// Jump implements the jump-pointer classifier of spec section 4.6,
// grounded on algorithm/jump.rs: each closed vertex's reserve list is
// drained by following jump pointers to the Open root each candidate
// currently reaches, lengthening jump lists by one entry on the way
// (the amortized log-growing mechanism) and merging a cycle's vertices
// whenever that root turns out to be the vertex being closed itself.
type Jump struct {
	g *digraph.Graph[int, jumpNode]
}

// NewJump creates an empty Jump classifier.
func NewJump() *Jump {
	return &Jump{g: digraph.New[int, jumpNode]()}
}

func (a *Jump) ensure(v int) {
	a.g.EnsureVertex(v, jumpNode{Status: StatusOpen})
}

func (a *Jump) node(v int) jumpNode {
	n, _ := a.g.GetLabel(v)
	return n
}

func (a *Jump) status(v int) Status { return a.node(v).Status }

func (a *Jump) setStatus(v int, st Status) {
	n := a.node(v)
	n.Status = st
	a.g.OverwriteLabel(v, n)
}

func (a *Jump) pushReserve(v, w int) {
	n := a.node(v)
	n.Reserve = append(n.Reserve, w)
	a.g.OverwriteLabel(v, n)
}

func (a *Jump) popReserve(v int) (int, bool) {
	n := a.node(v)
	if len(n.Reserve) == 0 {
		return 0, false
	}
	w := n.Reserve[len(n.Reserve)-1]
	n.Reserve = n.Reserve[:len(n.Reserve)-1]
	a.g.OverwriteLabel(v, n)
	return w, true
}

func (a *Jump) numJumps(v int) int { return len(a.node(v).Jumps) }

func (a *Jump) nthJump(v int, n int) int { return a.node(v).Jumps[n] }

func (a *Jump) lastJump(v int) int {
	js := a.node(v).Jumps
	return js[len(js)-1]
}

func (a *Jump) popLastJump(v int) {
	n := a.node(v)
	n.Jumps = n.Jumps[:len(n.Jumps)-1]
	a.g.OverwriteLabel(v, n)
}

func (a *Jump) pushJump(v, w int) {
	n := a.node(v)
	n.Jumps = append(n.Jumps, w)
	a.g.OverwriteLabel(v, n)
}

func (a *Jump) clearJumps(v int) {
	n := a.node(v)
	n.Jumps = nil
	a.g.OverwriteLabel(v, n)
}

func (a *Jump) AddTransition(u, v int) {
	a.ensure(u)
	a.ensure(v)
	st := a.status(u)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if a.g.IsSameVertex(u, v) {
		return
	}
	a.g.EnsureEdgeBck(u, v)
	if st != StatusLive {
		a.pushReserve(u, v)
	}
	a.calculateNewLiveStates(v)
}

func (a *Jump) MarkClosed(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if st == StatusLive {
		return
	}
	a.initializeJumps(v)
}

func (a *Jump) MarkLive(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.setStatus(v, StatusLive)
	a.calculateNewLiveStates(v)
}

func (a *Jump) NotReachable(v1, v2 int) {}

func (a *Jump) GetStatus(v int) (Status, bool) {
	if !a.g.IsSeen(v) {
		return 0, false
	}
	return a.status(v), true
}

func (a *Jump) GetSpace() int64 { return a.g.GetSpace() }
func (a *Jump) GetTime() int64  { return a.g.GetTime() }

func (a *Jump) SeenIdentifiers() []int { return a.g.IterSeenIdentifiers() }

// jump follows v's jump pointer chain to the Open vertex (or, as a
// safe terminus, a Live vertex) it currently reaches, popping stale
// entries that point at now-Dead vertices and extending v's jump list
// by one entry when that lengthens it -- the doubling mechanism that
// keeps chains amortized-logarithmic.
func (a *Jump) jump(v int) int {
	st := a.status(v)
	if st == StatusOpen || st == StatusLive {
		return v
	}
	for a.status(a.lastJump(v)) == StatusDead {
		a.popLastJump(v)
	}
	w := a.lastJump(v)
	result := a.jump(w)
	if a.numJumps(v) <= a.numJumps(w) {
		newJump := a.nthJump(w, a.numJumps(v)-1)
		a.pushJump(v, newJump)
	}
	return result
}

// mergePathFrom merges every vertex on the successor chain starting at
// v (following each vertex's first jump entry) up to and including the
// Open root it terminates at, into one canonical class.
func (a *Jump) mergePathFrom(v int) {
	toMerge := []int{v}
	w := v
	for a.status(w) == StatusUnknown {
		w = a.nthJump(w, 0)
		toMerge = append(toMerge, w)
	}
	for _, u := range toMerge {
		a.g.MergeUsing(v, u, func(loser, survivor jumpNode) jumpNode {
			return jumpNode{Status: StatusOpen}
		})
	}
}

// initializeJumps is the core of MarkClosed: drain v's reserve list,
// following each candidate's jump chain to find the Open root it
// reaches; a root equal to v means a cycle, merged away; the first
// candidate whose root differs becomes v's own jump target and v
// becomes Unknown. An empty reserve with no root found means v is
// Dead, which can in turn resurrect predecessors whose first jump
// entry pointed at v.
func (a *Jump) initializeJumps(v int) {
	for {
		w, ok := a.popReserve(v)
		if !ok {
			break
		}
		if a.status(w) == StatusDead {
			continue
		}
		wEnd := a.jump(w)
		if a.g.IsSameVertex(v, wEnd) {
			a.mergePathFrom(w)
			continue
		}
		a.setStatus(v, StatusUnknown)
		a.pushJump(v, w)
		return
	}

	a.setStatus(v, StatusDead)
	var toRecurse []int
	for _, u := range a.g.IterBckEdges(v) {
		if a.status(u) != StatusUnknown || a.numJumps(u) == 0 {
			continue
		}
		if a.g.IsSameVertex(a.nthJump(u, 0), v) {
			toRecurse = append(toRecurse, u)
		}
	}
	for _, u := range toRecurse {
		a.clearJumps(u)
		a.setStatus(u, StatusOpen)
	}
	for _, u := range toRecurse {
		a.initializeJumps(u)
	}
}

func (a *Jump) calculateNewLiveStates(v int) {
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.setStatus(x, StatusLive) })
}
