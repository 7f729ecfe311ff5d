package listforest

import (
	"errors"

	"github.com/katalvlaran/deadstate/counters"
)

// Sentinel errors for listforest operations. Every one of these
// signals a programmer precondition violation (spec.md §7): the
// caller queried or mutated an identifier that was never Ensure'd.
var (
	// ErrNotSeen indicates an operation referenced an identifier that
	// has never been passed to Ensure.
	ErrNotSeen = errors.New("listforest: identifier not seen")
)

// node is one element of a list, represented as a node in the AVL tree
// whose in-order traversal is that list's order.
type node[V comparable] struct {
	label  V
	height int
	hasP   bool
	parent V
	hasL   bool
	lchild V
	hasR   bool
	rchild V
}

// Forest holds a collection of disjoint ordered lists over an
// identifier universe V. The zero value is not ready to use; call New.
type Forest[V comparable] struct {
	nodes map[V]*node[V]
	space counters.Counter
	time  counters.Counter
}

// New creates an empty Forest.
func New[V comparable]() *Forest[V] {
	return &Forest[V]{nodes: make(map[V]*node[V])}
}

// GetSpace returns the debug "space" counter: the number of
// identifiers currently tracked.
func (f *Forest[V]) GetSpace() int64 { return f.space.Get() }

// GetTime returns the debug "time" counter: loop iterations and
// recursive calls performed across all operations so far.
func (f *Forest[V]) GetTime() int64 { return f.time.Get() }

// IsSeen reports whether x has been Ensure'd.
func (f *Forest[V]) IsSeen(x V) bool {
	_, ok := f.nodes[x]
	return ok
}

func (f *Forest[V]) mustGet(x V) *node[V] {
	n, ok := f.nodes[x]
	if !ok {
		panic(ErrNotSeen)
	}
	return n
}

func height[V comparable](f *Forest[V], hasChild bool, child V) int {
	if !hasChild {
		return -1
	}
	return f.mustGet(child).height
}

func (f *Forest[V]) setHeight(n *node[V]) {
	lh := height(f, n.hasL, n.lchild)
	rh := height(f, n.hasR, n.rchild)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
	f.time.Inc()
}

// linkLeft attaches child (or clears it, if ok is false) as n's left
// child and fixes the child's parent pointer.
func (f *Forest[V]) linkLeft(n *node[V], ok bool, child V) {
	n.hasL = ok
	n.lchild = child
	if ok {
		f.mustGet(child).hasP = true
		f.mustGet(child).parent = n.label
	}
}

// linkRight attaches child (or clears it, if ok is false) as n's right
// child and fixes the child's parent pointer.
func (f *Forest[V]) linkRight(n *node[V], ok bool, child V) {
	n.hasR = ok
	n.rchild = child
	if ok {
		f.mustGet(child).hasP = true
		f.mustGet(child).parent = n.label
	}
}

// isolate detaches n from any parent/children, turning it into a
// singleton tree. It returns nothing and does not touch the former
// children's parent flags; callers that re-splice them read n's child
// fields beforehand.
func (f *Forest[V]) isolate(n *node[V]) {
	n.hasP = false
	n.hasL = false
	n.hasR = false
	n.height = 0
}

func balanceFactor[V comparable](f *Forest[V], n *node[V]) int {
	return height(f, n.hasL, n.lchild) - height(f, n.hasR, n.rchild)
}

