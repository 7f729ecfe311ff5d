package digraph

import (
	"errors"

	"github.com/katalvlaran/deadstate/counters"
)

// Sentinel errors for digraph operations. Every one of these signals a
// programmer precondition violation: the caller referenced an
// identifier that was never passed to EnsureVertex.
var (
	// ErrVertexNotFound indicates an operation referenced an
	// identifier that has never been Ensure'd.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)

// uniqueID names one original vertex identifier ever passed to
// EnsureVertex, before any merging.
type uniqueID int

// canonicalID names one surviving union-find class. Every uniqueID
// resolves, through the union-find, to exactly one canonicalID at any
// point in time; that resolution can change as merges happen.
type canonicalID int

// dsu is a disjoint-set-union over a dense range of small integers,
// with path compression and union by rank -- the same construction
// prim_kruskal's Kruskal implementation inlines for MST edge
// contraction, generalized here from string vertex IDs to small dense
// integers and exposed as its own type since digraph's merge needs to
// report which side survived.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU() *dsu {
	return &dsu{}
}

func (d *dsu) alloc() int {
	id := len(d.parent)
	d.parent = append(d.parent, id)
	d.rank = append(d.rank, 0)
	return id
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the classes of x and y, returning the surviving root
// and the retired (now-aliased) root. If x and y are already the same
// class, survivor == retired == that class and the caller should treat
// it as a no-op.
func (d *dsu) union(x, y int) (survivor, retired int) {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return rx, ry
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	return rx, ry
}

// edgeList is an append-only forward or backward adjacency sequence,
// named for parity with the originating graph.rs's LinkedList<UniqueID>
// (a Go slice gives the same O(1)-amortized append with none of a
// linked list's pointer-chasing cost).
type edgeList []uniqueID

// Graph is an incremental directed graph over vertex keys V, each
// canonical vertex carrying a label of type T. The zero value is not
// ready to use; call New.
type Graph[V comparable, T any] struct {
	vertexIDs map[V]uniqueID
	idVertex  []V
	find      *dsu
	labels    map[canonicalID]T
	fwd       map[canonicalID]edgeList
	bck       map[canonicalID]edgeList

	space counters.Counter
	time  counters.Counter
}

// New creates an empty Graph.
func New[V comparable, T any]() *Graph[V, T] {
	return &Graph[V, T]{
		vertexIDs: make(map[V]uniqueID),
		find:      newDSU(),
		labels:    make(map[canonicalID]T),
		fwd:       make(map[canonicalID]edgeList),
		bck:       make(map[canonicalID]edgeList),
	}
}

// GetSpace returns the debug "space" counter.
func (g *Graph[V, T]) GetSpace() int64 { return g.space.Get() }

// GetTime returns the debug "time" counter.
func (g *Graph[V, T]) GetTime() int64 { return g.time.Get() }

// IsSeen reports whether v has been passed to EnsureVertex.
func (g *Graph[V, T]) IsSeen(v V) bool {
	g.time.Inc()
	_, ok := g.vertexIDs[v]
	return ok
}

func (g *Graph[V, T]) canonOf(v V) (canonicalID, bool) {
	id, ok := g.vertexIDs[v]
	if !ok {
		return 0, false
	}
	return canonicalID(g.find.find(int(id))), true
}

func (g *Graph[V, T]) mustCanon(v V) canonicalID {
	c, ok := g.canonOf(v)
	if !ok {
		panic(ErrVertexNotFound)
	}
	return c
}
