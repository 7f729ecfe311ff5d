package digraph

// EnsureVertex idempotently inserts v with defaultLabel if unseen; a
// no-op (preserving the existing label) if v is already seen.
func (g *Graph[V, T]) EnsureVertex(v V, defaultLabel T) {
	if g.IsSeen(v) {
		g.time.Inc()
		return
	}
	id := uniqueID(g.find.alloc())
	canon := canonicalID(id)
	g.vertexIDs[v] = id
	g.idVertex = append(g.idVertex, v)
	g.labels[canon] = defaultLabel
	g.fwd[canon] = nil
	g.bck[canon] = nil
	g.time.Inc()
	g.space.Inc()
}

// GetLabel returns the label of v's canonical vertex and true, or the
// zero value and false if v is unseen.
func (g *Graph[V, T]) GetLabel(v V) (T, bool) {
	g.time.Inc()
	canon, ok := g.canonOf(v)
	if !ok {
		var zero T
		return zero, false
	}
	return g.labels[canon], true
}

// OverwriteLabel stores label on v's canonical vertex. Panics if v is
// unseen.
func (g *Graph[V, T]) OverwriteLabel(v V, label T) {
	g.time.Inc()
	canon := g.mustCanon(v)
	g.labels[canon] = label
}

// IsSameVertex reports whether v1 and v2 currently resolve to the same
// canonical vertex.
func (g *Graph[V, T]) IsSameVertex(v1, v2 V) bool {
	return g.mustCanon(v1) == g.mustCanon(v2)
}

// GetCanonVertex returns the original identifier first registered for
// v's canonical class -- the identifier EnsureVertex was first called
// with for whichever vertex became (or remains) the survivor of any
// merges. Panics if v is unseen.
func (g *Graph[V, T]) GetCanonVertex(v V) V {
	canon := g.mustCanon(v)
	return g.idVertex[int(canon)]
}

// IterVertices returns every distinct canonical vertex currently
// tracked, each appearing once regardless of how many original
// identifiers merged into it.
func (g *Graph[V, T]) IterVertices() []V {
	seen := make(map[canonicalID]bool, len(g.labels))
	out := make([]V, 0, len(g.labels))
	for _, v := range g.idVertex {
		g.time.Inc()
		canon, _ := g.canonOf(v)
		if seen[canon] {
			continue
		}
		seen[canon] = true
		out = append(out, g.idVertex[int(canon)])
	}
	return out
}

// IterSeenIdentifiers returns every original identifier ever passed to
// EnsureVertex, including ones later merged into another canonical
// class.
func (g *Graph[V, T]) IterSeenIdentifiers() []V {
	out := make([]V, len(g.idVertex))
	copy(out, g.idVertex)
	return out
}
