package digraph

// MergeUsing unions the canonical vertices of v1 and v2. If they are
// already the same canonical vertex, this is a no-op. Otherwise the
// union-find picks a survivor (by rank, same construction
// prim_kruskal's Kruskal MST inlines); the survivor's label becomes
// combine(loserLabel, survivorLabel); the loser's forward and backward
// adjacency sequences are appended to the survivor's, which copies
// every loser entry (time proportional to the loser's adjacency
// lengths, not O(1)); the
// loser's canonical slot is retired (its label and adjacency entries
// are dropped -- all future lookups resolve through the union-find to
// the survivor instead). Panics if either vertex is unseen.
func (g *Graph[V, T]) MergeUsing(v1, v2 V, combine func(loserLabel, survivorLabel T) T) {
	g.time.Inc()
	c1 := g.mustCanon(v1)
	c2 := g.mustCanon(v2)
	if c1 == c2 {
		return
	}

	survivorRoot, loserRoot := g.find.union(int(c1), int(c2))
	survivor := canonicalID(survivorRoot)
	loser := canonicalID(loserRoot)

	survivorLabel := g.labels[survivor]
	loserLabel := g.labels[loser]
	g.labels[survivor] = combine(loserLabel, survivorLabel)
	delete(g.labels, loser)

	g.fwd[survivor] = append(g.fwd[survivor], g.fwd[loser]...)
	g.bck[survivor] = append(g.bck[survivor], g.bck[loser]...)
	delete(g.fwd, loser)
	delete(g.bck, loser)

	g.space.Inc()
}
