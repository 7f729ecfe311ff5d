package classify

import "github.com/katalvlaran/deadstate/digraph"

// Naive is the baseline classifier: it keeps no extra structure beyond
// the plain digraph and recomputes the entire Dead set from scratch on
// every MarkClosed. Grounded on naive.rs: partition seen vertices into
// "unknown or dead" and "open or live", compute the backward-reachable
// closure of the latter restricted to the former, and assign Dead to
// whatever that closure misses.
//
// Correct but Theta(n+m) per close; useful mainly as an oracle for
// property tests against the other four algorithms.
type Naive struct {
	g *digraph.Graph[int, Status]
}

// NewNaive creates an empty Naive classifier.
func NewNaive() *Naive {
	return &Naive{g: digraph.New[int, Status]()}
}

func (a *Naive) ensure(v int) {
	a.g.EnsureVertex(v, StatusOpen)
}

func (a *Naive) status(v int) Status {
	st, _ := a.g.GetLabel(v)
	return st
}

func (a *Naive) AddTransition(u, v int) {
	a.ensure(u)
	a.ensure(v)
	st := a.status(u)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.g.EnsureEdge(u, v)
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.g.OverwriteLabel(x, StatusLive) })
}

func (a *Naive) MarkClosed(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	if st == StatusLive {
		return
	}
	a.g.OverwriteLabel(v, StatusUnknown)
	a.recalculateDeadStates()
}

func (a *Naive) MarkLive(v int) {
	a.ensure(v)
	st := a.status(v)
	if st != StatusOpen && st != StatusLive {
		panic(ErrPrecondition)
	}
	a.g.OverwriteLabel(v, StatusLive)
	livePropagate(a.g, v, func(x int) bool { return a.status(x) == StatusLive }, func(x int) { a.g.OverwriteLabel(x, StatusLive) })
}

func (a *Naive) NotReachable(v1, v2 int) {}

func (a *Naive) GetStatus(v int) (Status, bool) {
	if !a.g.IsSeen(v) {
		return 0, false
	}
	return a.status(v), true
}

func (a *Naive) GetSpace() int64 { return a.g.GetSpace() }
func (a *Naive) GetTime() int64  { return a.g.GetTime() }

func (a *Naive) SeenIdentifiers() []int { return a.g.IterSeenIdentifiers() }

// recalculateDeadStates is the only nontrivial part of Naive: a full
// backward DFS from every Open-or-Live vertex, restricted to
// Unknown-or-Dead vertices, worst case O(n+m).
func (a *Naive) recalculateDeadStates() {
	var sources []int
	unknownOrDead := make(map[int]bool)
	for _, v := range a.g.IterVertices() {
		switch a.status(v) {
		case StatusOpen, StatusLive:
			sources = append(sources, v)
		case StatusUnknown, StatusDead:
			unknownOrDead[v] = true
		}
	}

	notDead := make(map[int]bool, len(sources))
	for _, s := range sources {
		notDead[s] = true
	}
	reached := a.g.DFSBck(sources, func(u int) bool { return unknownOrDead[u] })
	for _, u := range reached {
		notDead[u] = true
	}

	for v := range unknownOrDead {
		if notDead[v] {
			a.g.OverwriteLabel(v, StatusUnknown)
		} else {
			a.g.OverwriteLabel(v, StatusDead)
		}
	}
}
