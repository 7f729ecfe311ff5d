package scenario

import "github.com/katalvlaran/deadstate/classify"

func add(u, v int) classify.Transaction { return classify.Transaction{Kind: classify.TxAdd, V1: u, V2: v} }
func closeTx(v int) classify.Transaction {
	return classify.Transaction{Kind: classify.TxClose, V1: v}
}

// closeAscending appends a Close transaction for every vertex
// 0..n-1 in ascending order, skipping leaveOpen if it falls in range.
// Path, Cycle, RandomSparse and RandomDAG close this way; Star and
// Wheel, whose edges point into the center 0, order their own closes
// (leaves or rim first, then the center).
func closeAscending(n, leaveOpen int) []classify.Transaction {
	out := make([]classify.Transaction, 0, n)
	for v := 0; v < n; v++ {
		if v == leaveOpen {
			continue
		}
		out = append(out, closeTx(v))
	}
	return out
}

// Path builds a simple directed path 0 -> 1 -> ... -> n-1 (n >= 2) and
// closes every vertex in ascending order, producing an all-Dead chain
// unless WithLeaveOpen names the vertex to leave Open.
func Path(n int, opts ...Option) []classify.Transaction {
	cfg := newConfig(opts...)
	var txs []classify.Transaction
	for i := 0; i < n-1; i++ {
		txs = append(txs, add(i, i+1))
	}
	return append(txs, closeAscending(n, cfg.leaveOpen)...)
}

// Cycle builds a simple directed cycle 0 -> 1 -> ... -> (n-1) -> 0
// (n >= 3) and closes every vertex in ascending order, collapsing the
// whole ring into one canonical class unless WithLeaveOpen breaks it.
func Cycle(n int, opts ...Option) []classify.Transaction {
	cfg := newConfig(opts...)
	var txs []classify.Transaction
	for i := 0; i < n; i++ {
		txs = append(txs, add(i, (i+1)%n))
	}
	return append(txs, closeAscending(n, cfg.leaveOpen)...)
}

// Star builds a star with center 0 and leaves 1..n-1 (n >= 2), every
// leaf pointing inward at the center, and closes the leaves before the
// center so the center's classification depends on whether it itself
// gets closed.
func Star(n int, opts ...Option) []classify.Transaction {
	cfg := newConfig(opts...)
	var txs []classify.Transaction
	for leaf := 1; leaf < n; leaf++ {
		txs = append(txs, add(leaf, 0))
	}
	for leaf := 1; leaf < n; leaf++ {
		if leaf == cfg.leaveOpen {
			continue
		}
		txs = append(txs, closeTx(leaf))
	}
	if cfg.leaveOpen != 0 {
		txs = append(txs, closeTx(0))
	}
	return txs
}

// Wheel builds a directed rim cycle 1 -> 2 -> ... -> (n-1) -> 1 plus a
// spoke from every rim vertex into the center 0 (n >= 4), then closes
// the rim before the center.
func Wheel(n int, opts ...Option) []classify.Transaction {
	cfg := newConfig(opts...)
	rim := n - 1
	var txs []classify.Transaction
	for i := 0; i < rim; i++ {
		from := 1 + i
		to := 1 + (i+1)%rim
		txs = append(txs, add(from, to))
		txs = append(txs, add(from, 0))
	}
	for i := 0; i < rim; i++ {
		v := 1 + i
		if v == cfg.leaveOpen {
			continue
		}
		txs = append(txs, closeTx(v))
	}
	if cfg.leaveOpen != 0 {
		txs = append(txs, closeTx(0))
	}
	return txs
}

// RandomSparse builds a random DAG over n vertices: for every ordered
// pair (i, j) with i < j, an edge i -> j is added independently with
// probability p. Restricting to i < j guarantees acyclicity, so
// ascending close order is always a valid topological order.
// Deterministic for a fixed WithSeed.
func RandomSparse(n int, p float64, opts ...Option) []classify.Transaction {
	cfg := newConfig(opts...)
	var txs []classify.Transaction
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				txs = append(txs, add(i, j))
			}
		}
	}
	return append(txs, closeAscending(n, cfg.leaveOpen)...)
}

// RandomDAG builds a random DAG over n vertices with exactly edgeCount
// edges (or fewer, if edgeCount exceeds the number of available i < j
// pairs), each a distinct uniformly-chosen pair i < j. Deterministic
// for a fixed WithSeed.
func RandomDAG(n, edgeCount int, opts ...Option) []classify.Transaction {
	cfg := newConfig(opts...)
	type pair struct{ u, v int }
	var all []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			all = append(all, pair{i, j})
		}
	}
	cfg.rng.Shuffle(len(all), func(a, b int) { all[a], all[b] = all[b], all[a] })
	if edgeCount > len(all) {
		edgeCount = len(all)
	}
	var txs []classify.Transaction
	for _, pr := range all[:edgeCount] {
		txs = append(txs, add(pr.u, pr.v))
	}
	return append(txs, closeAscending(n, cfg.leaveOpen)...)
}
