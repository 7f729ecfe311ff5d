// Package runner is the external interface to the classify core (spec
// section 4.10): it decodes a transaction log, validates it against a
// JSON Schema, feeds transactions to a classify.Algorithm one at a
// time while enforcing a wall-clock timeout checked only between
// transactions, and reports the final classification grouped into
// four sorted lists per vertex status.
//
// Grounded on the teacher's functional-options configuration style
// (core.GraphOption / dfs.Option) for Run's Option type, on
// yesoreyeram-thaiyyal's schema_validator.go for the gojsonschema
// wiring, and on luxfi-consensus's zap/prometheus usage for structured
// logging and metrics. The classify and digraph packages never import
// this package or any of its dependencies: the ambient stack lives
// here, not on the hot classification path.
package runner
