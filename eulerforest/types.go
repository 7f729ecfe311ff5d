package eulerforest

import "github.com/katalvlaran/deadstate/listforest"

// tokenID identifies one element of an Euler tour: either a vertex v
// (represented as tokenID{v, v}) or a directed edge (u, v) (represented
// as tokenID{u, v}), distinct from its reverse (v, u).
type tokenID struct {
	a, b int
}

func vertexToken(v int) tokenID { return tokenID{v, v} }
func edgeToken(u, v int) tokenID {
	return tokenID{u, v}
}

// Forest maintains a forest of trees over vertex identifiers 0..n-1 (or
// any sparse subset thereof) and supports O(log n) connectivity
// queries, edge insertion, and edge removal. The zero value is not
// ready to use; call New.
type Forest struct {
	tour *listforest.Forest[tokenID]
}

// New creates an empty Forest.
func New() *Forest {
	return &Forest{tour: listforest.New[tokenID]()}
}

// IsSeen reports whether v has been passed to EnsureVertex.
func (f *Forest) IsSeen(v int) bool {
	return f.tour.IsSeen(vertexToken(v))
}

// GetTime returns the debug "time" counter inherited from the
// underlying list forest.
func (f *Forest) GetTime() int64 { return f.tour.GetTime() }

// GetSpace returns the debug "space" counter inherited from the
// underlying list forest.
func (f *Forest) GetSpace() int64 { return f.tour.GetSpace() }
