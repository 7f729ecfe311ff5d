package scenario

import (
	"sort"
	"testing"

	"github.com/katalvlaran/deadstate/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(a classify.Algorithm, txs []classify.Transaction) {
	for _, t := range txs {
		switch t.Kind {
		case classify.TxAdd:
			a.AddTransition(t.V1, t.V2)
		case classify.TxClose:
			a.MarkClosed(t.V1)
		case classify.TxLive:
			a.MarkLive(t.V1)
		case classify.TxNotReachable:
			a.NotReachable(t.V1, t.V2)
		}
	}
}

func statusesOf(t *testing.T, a classify.Algorithm) map[classify.Status][]int {
	t.Helper()
	out := map[classify.Status][]int{}
	for _, v := range a.SeenIdentifiers() {
		st, ok := a.GetStatus(v)
		require.True(t, ok)
		out[st] = append(out[st], v)
	}
	for _, b := range out {
		sort.Ints(b)
	}
	return out
}

func TestPathAllClosedIsAllDead(t *testing.T) {
	txs := Path(5)
	a := classify.NewNaive()
	apply(a, txs)
	got := statusesOf(t, a)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got[classify.StatusDead])
}

func TestCycleAllClosedIsAllDead(t *testing.T) {
	txs := Cycle(4)
	a := classify.NewSimple()
	apply(a, txs)
	got := statusesOf(t, a)
	assert.Equal(t, []int{0, 1, 2, 3}, got[classify.StatusDead])
}

func TestStarWithCenterLeftOpenLeavesLeavesUnknown(t *testing.T) {
	txs := Star(4, WithLeaveOpen(0))
	a := classify.NewBFGT()
	apply(a, txs)
	got := statusesOf(t, a)
	assert.Equal(t, []int{0}, got[classify.StatusOpen])
	assert.Equal(t, []int{1, 2, 3}, got[classify.StatusUnknown])
}

func TestWheelAllClosedIsAllDead(t *testing.T) {
	txs := Wheel(5)
	a := classify.NewJump()
	apply(a, txs)
	got := statusesOf(t, a)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got[classify.StatusDead])
}

func TestRandomSparseIsDeterministic(t *testing.T) {
	a := RandomSparse(12, 0.3, WithSeed(7))
	b := RandomSparse(12, 0.3, WithSeed(7))
	assert.Equal(t, a, b)
}

func TestRandomDAGRespectsRequestedEdgeCount(t *testing.T) {
	txs := RandomDAG(6, 5, WithSeed(3))
	var edges int
	for _, tr := range txs {
		if tr.Kind == classify.TxAdd {
			edges++
		}
	}
	assert.Equal(t, 5, edges)
}

func TestRandomSparseFullyClosedHasNoUnknownOrOpen(t *testing.T) {
	// Every classifier must agree that a random sparse DAG, fully
	// closed, contains no Unknown or Open vertices: nothing Open
	// remains to reach, so everything resolves to Dead.
	txs := RandomSparse(15, 0.4, WithSeed(42))
	for _, a := range []classify.Algorithm{
		classify.NewNaive(), classify.NewSimple(), classify.NewBFGT(),
		classify.NewJump(), classify.NewPolylog(false), classify.NewPolylog(true),
	} {
		apply(a, txs)
		got := statusesOf(t, a)
		assert.Empty(t, got[classify.StatusUnknown], "%T", a)
		assert.Empty(t, got[classify.StatusOpen], "%T", a)
	}
}
