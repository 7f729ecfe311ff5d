package classify

import (
	"github.com/katalvlaran/deadstate/digraph"
	"github.com/katalvlaran/deadstate/eulerforest"
)

// polylogNode is Polylog's per-canonical-vertex label. Every closed
// vertex has at most one successor, stored as the original (u, v) edge
// pair rather than just v so merges don't invalidate it. Jump is a
// pointer forward along the successor chain (initially the successor
// itself, advanced as isRoot walks the chain) for the non-exhausted
// fast path;
// Exhausted marks a vertex whose jump cache gave up and now relies
// entirely on the Euler forest's same_root query (only meaningful when
// the classifier runs in optimized mode).
type polylogNode struct {
	Status    Status
	Reserve   []int
	HasNext   bool
	NextU     int
	NextV     int
	HasJump   bool
	Jump      int
	Exhausted bool
}

// Polylog implements the asymptotically-best classifier of spec
// section 4.7, grounded on algorithm/polylog.rs (the base variant) and
// algorithm/polylog_opt.rs (the optimized variant, selected by passing
// optimized=true to NewPolylog). Both track each vertex's tentative
// successor and verify, via an Euler-tour forest, whether that chain
// still reaches an Open root; the optimized variant adds a
// jump-pointer fast path that falls back to the Euler forest the first
// time a vertex's jump is found pointing at a Dead vertex.
type Polylog struct {
	g              *digraph.Graph[int, polylogNode]
	euler          *eulerforest.Forest
	optimized      bool
	additionalSpace int64
}

// NewPolylog creates an empty Polylog classifier. optimized selects
// algorithm/polylog_opt.rs's jump-pointer fast path over the base
// variant's Euler-forest-only approach.
func NewPolylog(optimized bool) *Polylog {
	return &Polylog{
		g:         digraph.New[int, polylogNode](),
		euler:     eulerforest.New(),
		optimized: optimized,
	}
}

func (a *Polylog) ensure(v int) {
	a.g.EnsureVertex(v, polylogNode{})
}

func (a *Polylog) node(v int) polylogNode {
	n, _ := a.g.GetLabel(v)
	return n
}

func (a *Polylog) setNode(v int, n polylogNode) {
	a.g.OverwriteLabel(v, n)
}

func (a *Polylog) status(v int) Status { return a.node(v).Status }

func (a *Polylog) setStatus(v int, st Status) {
	n := a.node(v)
	n.Status = st
	if st == StatusLive {
		n.Reserve = nil
	}
	a.setNode(v, n)
}

func (a *Polylog) pushReserve(v, w int) {
	n := a.node(v)
	n.Reserve = append(n.Reserve, w)
	a.setNode(v, n)
	a.additionalSpace++
}

func (a *Polylog) popReserve(v int) (int, bool) {
	n := a.node(v)
	if len(n.Reserve) == 0 {
		return 0, false
	}
	w := n.Reserve[len(n.Reserve)-1]
	n.Reserve = n.Reserve[:len(n.Reserve)-1]
	a.setNode(v, n)
	return w, true
}

func (a *Polylog) getSucc(v int) (int, bool) {
	n := a.node(v)
	return n.NextV, n.HasNext
}

func (a *Polylog) getJump(v int) (int, bool) {
	n := a.node(v)
	return n.Jump, n.HasJump
}

// setSucc records v's successor w. In base mode this only updates the
// bookkeeping fields (the caller adds the Euler-forest edge itself);
// in optimized mode it follows polylog_opt.rs's set_succ: if v is
// already exhausted, the edge goes straight into the Euler forest and
// w's exhaustion propagates immediately, otherwise v gets a plain jump
// pointer.
func (a *Polylog) setSucc(v, w int) {
	n := a.node(v)
	n.NextU, n.NextV, n.HasNext = v, w, true
	if a.optimized && n.Exhausted {
		a.setNode(v, n)
		a.euler.EnsureVertex(w)
		a.euler.AddEdge(v, w)
		a.markExhaustedFrom(w)
		return
	}
	n.Jump, n.HasJump = w, true
	a.setNode(v, n)
}

// clearSucc removes v's successor and returns the original edge. In
// optimized mode, if v had been exhausted its Euler-forest edge is
// removed too, mirroring polylog_opt.rs's clear_succ.
func (a *Polylog) clearSucc(v int) (int, int) {
	n := a.node(v)
	u, w := n.NextU, n.NextV
	exhausted := n.Exhausted
	n.HasNext = false
	n.HasJump = false
	a.setNode(v, n)
	if a.optimized && exhausted {
		a.euler.RemoveEdge(u, w)
	}
	return u, w
}

// markExhaustedFrom walks v's successor chain marking every vertex
// exhausted and adding its edge to the Euler forest, stopping at the
// first already-exhausted or Open vertex it reaches, and returns that
// terminus. Only used in optimized mode.
func (a *Polylog) markExhaustedFrom(v int) int {
	if a.node(v).Exhausted {
		return v
	}
	n := a.node(v)
	n.Exhausted = true
	a.setNode(v, n)
	a.euler.EnsureVertex(v)
	for {
		w, ok := a.getSucc(v)
		if !ok {
			break
		}
		a.euler.EnsureVertex(w)
		a.euler.AddEdge(v, w)
		if a.node(w).Exhausted {
			return w
		}
		nw := a.node(w)
		nw.Exhausted = true
		a.setNode(w, nw)
		v = w
	}
	return v
}

// isRoot reports whether v's successor chain currently reaches the
// Open vertex end. In base mode this is exactly the Euler forest's
// same_root query; in optimized mode it first tries the jump-pointer
// fast path, falling back to the Euler forest once a jump turns out to
// be stale (pointing at a now-Dead vertex), per polylog_opt.rs.
func (a *Polylog) isRoot(v, end int) bool {
	if !a.optimized {
		return a.euler.SameRoot(v, end)
	}
	if a.status(v) == StatusOpen {
		return a.g.IsSameVertex(v, end)
	}
	n := a.node(v)
	if n.Exhausted {
		a.euler.EnsureVertex(end)
		return a.euler.SameRoot(v, end)
	}
	j, _ := a.getJump(v)
	if a.status(j) == StatusDead {
		vEnd := a.markExhaustedFrom(v)
		if a.status(vEnd) == StatusOpen {
			return a.g.IsSameVertex(vEnd, end)
		}
		return a.euler.SameRoot(vEnd, end)
	}
	result := a.isRoot(j, end)
	if jj, ok := a.getJump(j); ok {
		n := a.node(v)
		n.Jump, n.HasJump = jj, true
		a.setNode(v, n)
	}
	return result
}

func (a *Polylog) isSucc(u, v int) bool {
	w, ok := a.getSucc(u)
	return ok && a.g.IsSameVertex(w, v)
}

// mergePathFrom merges every vertex on the successor chain starting at
// v, up to and including the Open root it terminates at, into one
// canonical class.
func (a *Polylog) mergePathFrom(v int) {
	toMerge := []int{v}
	cur := v
	for a.status(cur) != StatusOpen {
		next, _ := a.getSucc(cur)
		toMerge = append(toMerge, next)
		cur = next
	}
	for _, w := range toMerge {
		a.g.MergeUsing(v, w, func(n1, n2 polylogNode) polylogNode {
			return polylogNode{
				Exhausted: n1.Exhausted || n2.Exhausted,
				Reserve:   append(append([]int{}, n1.Reserve...), n2.Reserve...),
			}
		})
	}
}

func (a *Polylog) AddTransition(v1, v2 int) {
	a.ensure(v1)
	a.ensure(v2)
	st := a.status(v1)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.g.EnsureEdgeBck(v1, v2)
	if !a.optimized {
		a.euler.EnsureVertex(v1)
		a.euler.EnsureVertex(v2)
	}
	a.calculateNewLiveStates(v2)
	if st != StatusLive {
		a.pushReserve(v1, v2)
	}
}

func (a *Polylog) MarkClosed(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if st == StatusLive {
		return
	}
	if !a.optimized {
		a.euler.EnsureVertex(v)
	}
	a.checkDead(v)
}

func (a *Polylog) MarkLive(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if !a.optimized {
		a.euler.EnsureVertex(v)
	}
	a.setStatus(v, StatusLive)
	a.calculateNewLiveStates(v)
}

func (a *Polylog) NotReachable(v1, v2 int) {}

func (a *Polylog) GetStatus(v int) (Status, bool) {
	if !a.g.IsSeen(v) {
		return 0, false
	}
	return a.status(v), true
}

func (a *Polylog) GetSpace() int64 {
	return a.g.GetSpace() + a.euler.GetSpace() + a.additionalSpace
}

func (a *Polylog) GetTime() int64 { return a.g.GetTime() + a.euler.GetTime() }

func (a *Polylog) SeenIdentifiers() []int { return a.g.IterSeenIdentifiers() }

// checkDead drains the given vertex's reserve list, following isRoot
// to find whether each candidate currently reaches back to the vertex
// being closed (a cycle, merged away) or to some other Open root (the
// new successor). An exhausted reserve means the vertex is Dead, which
// can resurrect predecessors whose only successor pointed at it; those
// are processed through the same loop via an explicit worklist, as in
// both polylog.rs and polylog_opt.rs.
func (a *Polylog) checkDead(v int) {
	toVisit := []int{v}
	for len(toVisit) > 0 {
		x := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		toVisit = a.checkDeadStep(toVisit, x)
	}
}

func (a *Polylog) checkDeadStep(toVisit []int, v int) []int {
	for {
		w, ok := a.popReserve(v)
		if !ok {
			break
		}
		if a.status(w) == StatusDead {
			continue
		}
		if a.isRoot(w, v) {
			if a.optimized && a.node(v).Exhausted {
				a.markExhaustedFrom(w)
			}
			a.mergePathFrom(w)
			continue
		}
		a.setStatus(v, StatusUnknown)
		if a.optimized {
			a.setSucc(v, w)
		} else {
			a.setSucc(v, w)
			a.euler.AddEdge(v, w)
		}
		return toVisit
	}

	seen := make(map[int]bool)
	var toRecurse []int
	for _, u := range a.g.IterBckEdges(v) {
		if a.status(u) != StatusUnknown {
			continue
		}
		if !a.isSucc(u, v) {
			continue
		}
		if seen[u] {
			continue
		}
		seen[u] = true
		toRecurse = append(toRecurse, u)
	}
	a.setStatus(v, StatusDead)
	for _, u := range toRecurse {
		origU, origV := a.clearSucc(u)
		a.setStatus(u, StatusOpen)
		toVisit = append(toVisit, u)
		if !a.optimized {
			a.euler.RemoveEdge(origU, origV)
		}
	}
	return toVisit
}

func (a *Polylog) calculateNewLiveStates(v int) {
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.setStatus(x, StatusLive) })
}
