package listforest

// Ensure registers x as a singleton list if it has not been seen
// before; a no-op otherwise.
func (f *Forest[V]) Ensure(x V) {
	f.time.Inc()
	if f.IsSeen(x) {
		return
	}
	f.nodes[x] = &node[V]{label: x}
	f.space.Inc()
}

// GetRoot returns the canonical identifier of the list containing x:
// the root of x's AVL tree.
func (f *Forest[V]) GetRoot(x V) V {
	n := f.mustGet(x)
	for n.hasP {
		f.time.Inc()
		n = f.mustGet(n.parent)
	}
	return n.label
}

// SameRoot reports whether x and y belong to the same list.
func (f *Forest[V]) SameRoot(x, y V) bool {
	return f.GetRoot(x) == f.GetRoot(y)
}

// Next returns the successor of x within its list: the element
// immediately after x in in-order (list) position, and whether one
// exists.
func (f *Forest[V]) Next(x V) (V, bool) {
	n := f.mustGet(x)
	if n.hasR {
		f.time.Inc()
		cur := f.mustGet(n.rchild)
		for cur.hasL {
			f.time.Inc()
			cur = f.mustGet(cur.lchild)
		}
		return cur.label, true
	}
	cur := n
	for cur.hasP {
		f.time.Inc()
		p := f.mustGet(cur.parent)
		if p.hasL && p.lchild == cur.label {
			return p.label, true
		}
		cur = p
	}
	var zero V
	return zero, false
}

// Prev returns the predecessor of x within its list: the element
// immediately before x in in-order (list) position, and whether one
// exists.
func (f *Forest[V]) Prev(x V) (V, bool) {
	n := f.mustGet(x)
	if n.hasL {
		f.time.Inc()
		cur := f.mustGet(n.lchild)
		for cur.hasR {
			f.time.Inc()
			cur = f.mustGet(cur.rchild)
		}
		return cur.label, true
	}
	cur := n
	for cur.hasP {
		f.time.Inc()
		p := f.mustGet(cur.parent)
		if p.hasR && p.rchild == cur.label {
			return p.label, true
		}
		cur = p
	}
	var zero V
	return zero, false
}

// Concat concatenates list(x) followed by list(y) into one list. It is
// a no-op (returns false) if x and y are already in the same list;
// otherwise it performs the merge in O(log n) and returns true.
func (f *Forest[V]) Concat(x, y V) bool {
	f.time.Inc()
	r1 := f.mustGet(f.GetRoot(x))
	r2 := f.mustGet(f.GetRoot(y))
	if r1.label == r2.label {
		return false
	}

	hasRest, rest, pivot := f.splitMax(r1)
	f.joinPivot(hasRest, rest, pivot, true, r2.label)

	return true
}

// Split removes x from its list. The elements before x (if any) form
// their own list; x becomes a singleton list; the elements after x (if
// any) form their own list. O(log n).
//
// spec.md §4.8: "Split peels off v from its tree and zippers up the
// ancestors, alternating left- and right-accumulators and rebalancing
// at each level."
func (f *Forest[V]) Split(x V) {
	f.time.Inc()
	n := f.mustGet(x)

	hasL, left := n.hasL, n.lchild
	hasR, right := n.hasR, n.rchild

	// Read-only climb to the root, recording at each ancestor which
	// side the descent came from. Must happen before any mutation
	// below, since mutation destroys the parent chain it walks.
	type ancestorStep struct {
		anc     *node[V]
		wasLeft bool // true if the node we climbed from was anc's left child
	}
	var chain []ancestorStep
	cur := n
	for cur.hasP {
		f.time.Inc()
		p := f.mustGet(cur.parent)
		chain = append(chain, ancestorStep{anc: p, wasLeft: p.hasL && p.lchild == cur.label})
		cur = p
	}

	f.isolate(n)
	if hasL {
		f.mustGet(left).hasP = false
	}
	if hasR {
		f.mustGet(right).hasP = false
	}

	for _, s := range chain {
		anc := s.anc
		if s.wasLeft {
			// x's subtree was anc's left child: anc itself and anc's
			// right subtree are all after x, so fold them onto the
			// right accumulator with anc as the join pivot.
			otherHasR, otherR := anc.hasR, anc.rchild
			if otherHasR {
				f.mustGet(otherR).hasP = false
			}
			f.isolate(anc)
			newRight := f.joinPivot(hasR, right, anc, otherHasR, otherR)
			hasR, right = true, newRight.label
		} else {
			// x's subtree was anc's right child: anc and anc's left
			// subtree are all before x, so fold them onto the left
			// accumulator with anc as the join pivot.
			otherHasL, otherL := anc.hasL, anc.lchild
			if otherHasL {
				f.mustGet(otherL).hasP = false
			}
			f.isolate(anc)
			newLeft := f.joinPivot(otherHasL, otherL, anc, hasL, left)
			hasL, left = true, newLeft.label
		}
	}
}
