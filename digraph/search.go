package digraph

// DFSFwd returns, as an eagerly materialized slice, every canonical
// vertex reachable by following forward edges from sources, filtered
// at each step by includePred, excluding the sources themselves and
// visiting each vertex at most once. The traversal order is
// unspecified beyond that contract; callers that need only the
// resulting set (as every caller in classify does) should not depend
// on order.
//
// This realizes the "lazy sequence" traversal contract as an eager
// slice rather than a pull-based iterator: classify's callers always
// consume the whole result, so there is nothing to gain from laziness
// here and an eager slice keeps the traversal loop in one place,
// matching the teacher's dfs/bfs packages' own eager-result style.
func (g *Graph[V, T]) DFSFwd(sources []V, includePred func(V) bool) []V {
	return g.dfsFiltered(sources, g.IterFwdEdges, includePred)
}

// DFSBck is DFSFwd over backward edges.
func (g *Graph[V, T]) DFSBck(sources []V, includePred func(V) bool) []V {
	return g.dfsFiltered(sources, g.IterBckEdges, includePred)
}

func (g *Graph[V, T]) dfsFiltered(sources []V, neighbors func(V) []V, includePred func(V) bool) []V {
	visited := make(map[V]bool, len(sources))
	queue := make([]V, 0, len(sources))
	for _, s := range sources {
		visited[s] = true
		queue = append(queue, s)
	}
	var out []V
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range neighbors(v) {
			g.time.Inc()
			if visited[n] || !includePred(n) {
				continue
			}
			visited[n] = true
			out = append(out, n)
			queue = append(queue, n)
		}
	}
	return out
}

// TopoSearchBck yields a vertex v (in some order consistent with a
// peeling topological search) iff every one of v's forward successors
// that passes includeFwd has already been yielded, starting the search
// from candidates and, whenever a vertex is yielded, adding every one
// of its backward neighbors that passes includeBck as a new candidate.
//
// This is the maximal-promotion search simple.go and bfgt.go drive to
// find every vertex whose entire filtered forward cone is already
// settled.
func (g *Graph[V, T]) TopoSearchBck(candidates []V, includeBck, includeFwd func(V) bool) []V {
	yielded := make(map[V]bool)
	queued := make(map[V]bool, len(candidates))
	queue := make([]V, 0, len(candidates))
	for _, c := range candidates {
		queued[c] = true
		queue = append(queue, c)
	}

	var out []V
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false
		if yielded[v] {
			continue
		}

		ready := true
		for _, w := range g.IterFwdEdges(v) {
			g.time.Inc()
			if !includeFwd(w) {
				continue
			}
			if !yielded[w] {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}

		yielded[v] = true
		out = append(out, v)
		for _, u := range g.IterBckEdges(v) {
			g.time.Inc()
			if !includeBck(u) || yielded[u] || queued[u] {
				continue
			}
			queued[u] = true
			queue = append(queue, u)
		}
	}
	return out
}
