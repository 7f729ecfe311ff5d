// Package eulerforest implements O(log n) dynamic connectivity for
// forests (undirected graphs that are disjoint unions of trees): adding
// a one-vertex tree, joining two trees with an edge, splitting a tree
// by removing an edge, and same-tree queries.
//
// It represents each tree by an Euler tour: a cyclic sequence visiting
// every vertex token and every directed edge token of the tree exactly
// once, stored as an ordered list in a listforest.Forest. Joining two
// trees splices the two tours around the new edge's pair of tokens;
// splitting removes an edge's tokens and reconnects the two remaining
// arcs of the old tour. Both operations touch O(1) tokens plus O(log n)
// list-forest work.
//
// This is the layer-1 substrate the Polylog dead-state classifier
// builds on (see digraph and classify), grounded directly on the
// Euler-tour-tree construction of Henzinger and King as implemented in
// the originating euler_forest.rs.
package eulerforest
