// Package deadstate is an online library for incremental dead-state
// detection in a directed graph of states revealed one transaction at a
// time: edges are added as they are discovered, vertices are closed
// once their out-edges are fully known, and some vertices are declared
// Live directly. A vertex is Dead once it is closed and no Open (or
// Live) vertex remains forward-reachable from it; once Dead, always
// Dead.
//
// Five interchangeable algorithms implement the same classification —
// Naive, Simple, BFGT, Jump, and Polylog (with an optimized variant) —
// behind the single classify.Algorithm interface, layered over a
// shared generic digraph substrate:
//
//	counters/    — debug-statistics primitive (time/space counters)
//	listforest/  — AVL-balanced list forest, the Euler tour building block
//	eulerforest/ — Euler-tour-tree dynamic forest connectivity
//	digraph/     — generic directed graph with union-find vertex merging
//	classify/    — the five dead-state classification algorithms
//	scenario/    — deterministic transaction-log generators for tests and the CLI
//	runner/      — example execution, JSON decoding, metrics, cross-algorithm comparison
//	cmd/deadstate/ — the run/gen/compare/serve-metrics CLI front end
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for
// the full requirements this module implements.
package deadstate
