package listforest

// rotateLeft performs a left rotation around n, returning the new
// subtree root (n's former right child). The returned root inherits
// n's pre-rotation parent pointer, so rotating a detached subtree
// root yields another detached root. The parent's own child link is
// not updated here: a caller rotating a non-root node relinks the
// returned root itself (as rebalance and joinPivot do).
func (f *Forest[V]) rotateLeft(n *node[V]) *node[V] {
	f.time.Inc()
	origHasP, origParent := n.hasP, n.parent
	r := f.mustGet(n.rchild)
	f.linkRight(n, r.hasL, r.lchild)
	f.linkLeft(r, true, n.label)
	r.hasP, r.parent = origHasP, origParent
	f.setHeight(n)
	f.setHeight(r)
	return r
}

// rotateRight performs a right rotation around n, returning the new
// subtree root (n's former left child). See rotateLeft for the parent
// linkage contract.
func (f *Forest[V]) rotateRight(n *node[V]) *node[V] {
	f.time.Inc()
	origHasP, origParent := n.hasP, n.parent
	l := f.mustGet(n.lchild)
	f.linkLeft(n, l.hasR, l.rchild)
	f.linkRight(l, true, n.label)
	l.hasP, l.parent = origHasP, origParent
	f.setHeight(n)
	f.setHeight(l)
	return l
}

// rebalance restores the AVL property at n (whose children are each
// already balanced) and returns the possibly-new subtree root.
func (f *Forest[V]) rebalance(n *node[V]) *node[V] {
	f.setHeight(n)
	bf := balanceFactor(f, n)
	if bf > 1 {
		l := f.mustGet(n.lchild)
		if balanceFactor(f, l) < 0 {
			f.linkLeft(n, true, f.rotateLeft(l).label)
		}
		return f.rotateRight(n)
	}
	if bf < -1 {
		r := f.mustGet(n.rchild)
		if balanceFactor(f, r) > 0 {
			f.linkRight(n, true, f.rotateRight(r).label)
		}
		return f.rotateLeft(n)
	}
	return n
}

// joinPivot joins a (possibly absent) left subtree, a single detached
// pivot node, and a (possibly absent) right subtree into one AVL tree,
// given that every element of left precedes pivot precedes every
// element of right. Returns the new (detached) root. This is the
// classical AVL "join" algorithm: descend down the taller tree's
// appropriate spine until the heights are within one of each other,
// splice pivot in, then rebalance back up the spine that was
// descended.
//
// Precondition: if hasL (hasR), the node named by left (right) is
// itself a detached subtree root (hasP == false) -- callers that peel
// a subtree off an existing tree (see splitMax, Split) must clear that
// flag before calling in.
//
// spec.md §4.8: "Concat of two trees with height h1, h2: attach the
// smaller as a spine of the larger using rotations, then rebalance."
func (f *Forest[V]) joinPivot(hasL bool, left V, pivot *node[V], hasR bool, right V) *node[V] {
	f.time.Inc()
	lh := height(f, hasL, left)
	rh := height(f, hasR, right)

	if lh > rh+1 {
		ln := f.mustGet(left)
		newRight := f.joinPivot(ln.hasR, ln.rchild, pivot, hasR, right)
		f.linkRight(ln, true, newRight.label)
		return f.rebalance(ln)
	}
	if rh > lh+1 {
		rn := f.mustGet(right)
		newLeft := f.joinPivot(hasL, left, pivot, rn.hasL, rn.lchild)
		f.linkLeft(rn, true, newLeft.label)
		return f.rebalance(rn)
	}

	f.linkLeft(pivot, hasL, left)
	f.linkRight(pivot, hasR, right)
	pivot.hasP = false
	f.setHeight(pivot)
	return pivot
}

// splitMax removes and returns the maximum (rightmost) element of the
// tree rooted at r (r must be a detached root), together with the
// rebalanced remainder (which may be absent if r was a singleton).
func (f *Forest[V]) splitMax(r *node[V]) (hasRest bool, rest V, max *node[V]) {
	f.time.Inc()
	if !r.hasR {
		hasRest, rest = r.hasL, r.lchild
		if hasRest {
			f.mustGet(rest).hasP = false
		}
		f.isolate(r)
		return hasRest, rest, r
	}
	rn := f.mustGet(r.rchild)
	newHasRight, newRight, max := f.splitMax(rn)
	f.linkRight(r, newHasRight, newRight)
	newRoot := f.rebalance(r)
	return true, newRoot.label, max
}
