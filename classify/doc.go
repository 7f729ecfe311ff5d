// Package classify implements the online dead-state classification
// core: five interchangeable algorithms (Naive, Simple, BFGT, Jump,
// Polylog) that all satisfy the same Algorithm interface, incrementally
// partitioning a revealed directed graph's vertices into Open,
// Unknown, Dead, and Live as transactions arrive.
//
// Every algorithm is grounded on one file of the originating Rust
// sources (naive.rs, simple.rs, algorithm/bfgt.rs, algorithm/jump.rs,
// algorithm/polylog.rs / polylog_opt.rs respectively), built on top of
// the digraph and eulerforest substrates. They differ only in how much
// extra bookkeeping they maintain to avoid Naive's full recomputation
// on every close.
package classify
