package eulerforest

// EnsureVertex registers v as a new one-vertex tree if it has not been
// seen before; a no-op otherwise.
func (f *Forest) EnsureVertex(v int) {
	f.tour.Ensure(vertexToken(v))
}

// SameRoot reports whether v1 and v2 lie in the same tree.
func (f *Forest) SameRoot(v1, v2 int) bool {
	return f.tour.SameRoot(vertexToken(v1), vertexToken(v2))
}

// AddEdge joins the trees containing v1 and v2 with a new edge between
// them. Both vertices must already be seen and must not already be
// connected (the caller — classify's Polylog merges a cycle's vertices
// instead of adding an edge that would close it).
//
// Implementation: splits both trees' tours at their v1/v2 vertex
// tokens, saving each token's former tour-neighbors, then reassembles a
// single Euler tour of the combined tree in the order
// [v1, e12, v2, w2, u2, e21, w1, u1], where e12/e21 are the new edge's two
// directed tokens and u*/w* are v1's and v2's prior tour-predecessor
// and successor. This is exactly the splice order of the originating
// euler_forest.rs; see that file's comment for why it reproduces a
// valid Euler tour of the joined tree.
func (f *Forest) AddEdge(v1, v2 int) {
	e12 := edgeToken(v1, v2)
	e21 := edgeToken(v2, v1)
	t1 := vertexToken(v1)
	t2 := vertexToken(v2)
	f.tour.Ensure(e12)
	f.tour.Ensure(e21)

	u1, hasU1 := f.tour.Prev(t1)
	w1, hasW1 := f.tour.Next(t1)
	u2, hasU2 := f.tour.Prev(t2)
	w2, hasW2 := f.tour.Next(t2)
	f.tour.Split(t1)
	f.tour.Split(t2)

	r := f.tour.GetRoot(t1)
	splice := []struct {
		tok tokenID
		ok  bool
	}{
		{e12, true},
		{t2, true},
		{w2, hasW2},
		{u2, hasU2},
		{e21, true},
		{w1, hasW1},
		{u1, hasU1},
	}
	for _, s := range splice {
		if s.ok {
			f.tour.Concat(r, s.tok)
		}
	}
}

// RemoveEdge splits the tree containing the edge (v1, v2) into the two
// trees that result from deleting it. v1 and v2 must already be
// connected by this edge.
//
// Implementation: splits the tour at both of the edge's directed
// tokens, which breaks the single tour into up to three arcs (the two
// edge tokens are discarded as singletons), then reconnects the two
// outer arcs that belonged to the same side of the removed edge,
// exactly as in the originating euler_forest.rs.
func (f *Forest) RemoveEdge(v1, v2 int) {
	e12 := edgeToken(v1, v2)
	e21 := edgeToken(v2, v1)

	u1, hasU1 := f.tour.Prev(e12)
	u2, hasU2 := f.tour.Next(e12)
	u3, hasU3 := f.tour.Prev(e21)
	u4, hasU4 := f.tour.Next(e21)

	f.tour.Split(e12)
	f.tour.Split(e21)

	if hasU2 && hasU3 {
		f.tour.Concat(u2, u3)
	}
	if hasU4 && hasU1 {
		f.tour.Concat(u4, u1)
	}
}
