// Package listforest implements a balanced forest of ordered lists: a
// collection of disjoint sequences over an identifier universe,
// supporting split, concatenate, predecessor/successor, and same-list
// queries in O(log n).
//
// Each list is represented internally as one AVL tree whose in-order
// traversal is the list's order; a forest is simply many such trees
// sharing one node table. This is the layer-1 substrate that
// eulerforest builds Euler-tour connectivity on top of (see spec.md
// §4.8-4.9).
//
// Unlike the originating Rust avl_forest.rs — which leaves Split as
// `todo!()` and performs Concat by attaching one tree as an unbalanced
// spine of the other ("probably fine without rotations", per its own
// comment) — this package performs genuine AVL rebalancing on both
// operations, via a keyed join algorithm: Concat pops the maximum
// element of the left list to serve as a join pivot, and Split walks
// from the removed element back to the root, alternately joining left-
// and right-accumulator trees with each ancestor as pivot. Both run in
// O(log n) amortized against the height invariant, not O(n).
package listforest
