// Package digraph implements the incremental directed graph substrate
// shared by every dead-state classification algorithm in classify: a
// vertex set with union-find vertex merging, forward and
// backward adjacency, and the generic backward/forward traversals and
// the topological peeling search the classification algorithms drive.
//
// Vertices are identified by a caller-chosen comparable key V and carry
// a mutable label of type T; merging two vertices folds one's adjacency
// and label into the other's canonical class, at a cost proportional
// to the loser's adjacency lengths (the slices are copied) plus the
// union-find's near-constant find cost; later operations never need to
// revisit already-merged structure.
//
// This package has no dependency on anything above it (no logging, no
// metrics): it is grounded on the teacher's core package for its
// file-per-concern layout and its disjoint-set construction on
// prim_kruskal's Kruskal implementation, generalized from string
// vertex IDs to a generic comparable key and extended with the
// union-find merge and lazy-traversal contract of the digraph
// substrate this classifier needs.
package digraph
