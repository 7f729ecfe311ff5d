package listforest_test

import (
	"testing"

	"github.com/katalvlaran/deadstate/listforest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect walks Next from the head of x's list (found by repeatedly
// calling Prev) to the end, returning list order.
func collect[V comparable](t *testing.T, f *listforest.Forest[V], x V) []V {
	t.Helper()
	head := x
	for {
		prev, ok := f.Prev(head)
		if !ok {
			break
		}
		head = prev
	}
	out := []V{head}
	cur := head
	for {
		next, ok := f.Next(cur)
		if !ok {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}

func TestSingletons(t *testing.T) {
	f := listforest.New[int]()
	f.Ensure(2)
	f.Ensure(2)
	f.Ensure(3)
	f.Ensure(5)
	assert.Equal(t, 2, f.GetRoot(2))
	assert.Equal(t, 3, f.GetRoot(3))
	assert.Equal(t, 5, f.GetRoot(5))
	assert.True(t, f.SameRoot(2, 2))
	assert.False(t, f.SameRoot(2, 3))
}

func TestConcatOrder(t *testing.T) {
	f := listforest.New[int]()
	for _, v := range []int{2, 4, 6} {
		f.Ensure(v)
	}
	assert.False(t, f.Concat(2, 2))
	assert.True(t, f.Concat(4, 2))
	assert.False(t, f.Concat(2, 4))
	assert.True(t, f.Concat(4, 6))

	assert.True(t, f.SameRoot(2, 4))
	assert.True(t, f.SameRoot(2, 6))
	assert.Equal(t, []int{4, 2, 6}, collect(t, f, 6))
	assert.Equal(t, []int{4, 2, 6}, collect(t, f, 2))
	assert.Equal(t, []int{4, 2, 6}, collect(t, f, 4))
}

func TestConcatManyPreservesOrder(t *testing.T) {
	f := listforest.New[int]()
	const n = 200
	for i := 0; i < n; i++ {
		f.Ensure(i)
	}
	for i := 1; i < n; i++ {
		require.True(t, f.Concat(i-1, i))
	}
	got := collect(t, f, 0)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
	assert.True(t, f.SameRoot(0, n-1))
}

func TestSplitProducesThreeLists(t *testing.T) {
	f := listforest.New[int]()
	const n = 10
	for i := 0; i < n; i++ {
		f.Ensure(i)
	}
	for i := 1; i < n; i++ {
		require.True(t, f.Concat(i-1, i))
	}

	f.Split(4)

	assert.Equal(t, []int{0, 1, 2, 3}, collect(t, f, 0))
	assert.Equal(t, []int{4}, collect(t, f, 4))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, collect(t, f, 5))

	assert.True(t, f.SameRoot(0, 3))
	assert.False(t, f.SameRoot(3, 4))
	assert.False(t, f.SameRoot(4, 5))
	assert.True(t, f.SameRoot(5, 9))
}

func TestSplitAtEndsIsANoOpOnTheOtherSide(t *testing.T) {
	f := listforest.New[int]()
	for i := 0; i < 5; i++ {
		f.Ensure(i)
	}
	for i := 1; i < 5; i++ {
		require.True(t, f.Concat(i-1, i))
	}

	f.Split(0)
	_, hasPrev := f.Prev(0)
	assert.False(t, hasPrev)
	assert.Equal(t, []int{1, 2, 3, 4}, collect(t, f, 1))

	f.Split(4)
	_, hasNext := f.Next(4)
	assert.False(t, hasNext)
}

func TestRepeatedSplitConcatStaysConsistent(t *testing.T) {
	f := listforest.New[int]()
	const n = 64
	for i := 0; i < n; i++ {
		f.Ensure(i)
	}
	for i := 1; i < n; i++ {
		require.True(t, f.Concat(i-1, i))
	}

	// Split the list into four pieces and reassemble in a different
	// order via concat; verify the resulting order is exactly as
	// constructed and same-list queries agree with it.
	f.Split(20)
	f.Split(21)
	// Now lists are [0..19], [20], [21], [22..63]
	require.True(t, f.Concat(20, 21))
	// [0..19], [20, 21], [22..63]
	require.True(t, f.Concat(21, 22))
	// [0..19], [20..63]
	require.True(t, f.Concat(19, 20))
	// [0..63]
	got := collect(t, f, 0)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}
