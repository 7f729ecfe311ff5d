// Package scenario builds deterministic transaction logs for exercising
// the classify algorithms against known topologies, adapted from the
// teacher's builder package (deterministic functional-options graph
// constructors) and grounded on original_source/src/bin/example_gen.rs,
// which generates synthetic inputs the same way: fixed topologies
// (line, cycle, star, wheel) plus seeded random graphs.
//
// Every generator returns a []classify.Transaction ready to feed to a
// classify.Algorithm or the runner package; none of them touch a
// classify.Algorithm directly, keeping scenario outside the core's API
// surface per spec.md's non-goal boundary.
package scenario
