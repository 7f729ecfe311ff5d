package eulerforest_test

import (
	"testing"

	"github.com/katalvlaran/deadstate/eulerforest"
	"github.com/stretchr/testify/assert"
)

func TestAddVertex(t *testing.T) {
	f := eulerforest.New()
	assert.False(t, f.IsSeen(1))
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.EnsureVertex(3)
	assert.True(t, f.IsSeen(1))
	assert.True(t, f.IsSeen(2))
	assert.False(t, f.IsSeen(0))
	assert.False(t, f.IsSeen(4))

	assert.True(t, f.SameRoot(2, 2))
	assert.False(t, f.SameRoot(1, 2))
	assert.False(t, f.SameRoot(2, 3))
}

func TestTwoVertices(t *testing.T) {
	f := eulerforest.New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.AddEdge(1, 2)
	assert.True(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 1))
}

func TestAddEdges(t *testing.T) {
	f := eulerforest.New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.EnsureVertex(3)
	f.AddEdge(1, 2)
	assert.True(t, f.SameRoot(1, 2))
	assert.False(t, f.SameRoot(1, 3))
	assert.False(t, f.SameRoot(2, 3))
	f.AddEdge(3, 2)
	assert.True(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 3))
}

func TestAddEdgesComplicated(t *testing.T) {
	f := eulerforest.New()
	for i := 0; i < 10; i++ {
		f.EnsureVertex(i)
	}
	f.AddEdge(0, 1)
	f.AddEdge(2, 3)
	f.AddEdge(1, 3)
	f.AddEdge(6, 5)
	f.AddEdge(5, 4)
	f.AddEdge(4, 7)
	f.AddEdge(3, 8)
	f.AddEdge(9, 2)

	assert.True(t, f.SameRoot(0, 1))
	assert.True(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 3))
	assert.True(t, f.SameRoot(3, 8))
	assert.True(t, f.SameRoot(8, 9))

	assert.True(t, f.SameRoot(4, 5))
	assert.True(t, f.SameRoot(5, 6))
	assert.True(t, f.SameRoot(6, 7))

	assert.False(t, f.SameRoot(3, 4))
	assert.False(t, f.SameRoot(7, 8))
}

func TestAddTwoParents(t *testing.T) {
	f := eulerforest.New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.EnsureVertex(3)
	f.AddEdge(3, 1)
	assert.True(t, f.SameRoot(1, 3))
	assert.False(t, f.SameRoot(1, 2))
	f.AddEdge(3, 2)
	assert.True(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 3))
}

func TestRemoveEdge1(t *testing.T) {
	f := eulerforest.New()
	for i := 1; i <= 4; i++ {
		f.EnsureVertex(i)
	}
	f.AddEdge(1, 2)
	f.AddEdge(2, 3)
	f.AddEdge(3, 4)
	assert.True(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 3))
	assert.True(t, f.SameRoot(3, 4))
	f.RemoveEdge(2, 3)
	assert.True(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(3, 4))
	assert.False(t, f.SameRoot(2, 3))
}

func TestRemoveEdge2(t *testing.T) {
	f := eulerforest.New()
	for i := 1; i <= 4; i++ {
		f.EnsureVertex(i)
	}
	f.AddEdge(3, 4)
	f.AddEdge(1, 2)
	f.AddEdge(2, 3)
	assert.True(t, f.SameRoot(1, 4))
	f.RemoveEdge(1, 2)
	assert.False(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 3))
	assert.True(t, f.SameRoot(3, 4))
	f.RemoveEdge(2, 3)
	assert.False(t, f.SameRoot(1, 2))
	assert.False(t, f.SameRoot(1, 3))
	assert.False(t, f.SameRoot(2, 3))
	assert.True(t, f.SameRoot(3, 4))
}

func TestAddEdgeReconnectsAfterRemoval(t *testing.T) {
	f := eulerforest.New()
	for i := 1; i <= 5; i++ {
		f.EnsureVertex(i)
	}
	f.AddEdge(1, 2)
	f.AddEdge(2, 3)
	f.RemoveEdge(1, 2)
	f.AddEdge(1, 4)
	f.AddEdge(4, 5)
	assert.False(t, f.SameRoot(1, 2))
	assert.True(t, f.SameRoot(2, 3))
	assert.True(t, f.SameRoot(1, 4))
	assert.True(t, f.SameRoot(1, 5))
	assert.True(t, f.SameRoot(4, 5))
}
