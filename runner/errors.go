package runner

import "errors"

// ErrSchemaInvalid indicates a decoded transaction log failed JSON
// Schema validation (runner/schema.go); the log is rejected before any
// transaction reaches the core.
var ErrSchemaInvalid = errors.New("runner: transaction log failed schema validation")

// ErrDecode indicates the input bytes were not valid JSON, or did not
// match the Transaction shape once parsed.
var ErrDecode = errors.New("runner: failed to decode transaction log")

// ErrUnknownAlgorithm indicates a caller requested an algorithm name
// that NewAlgorithm does not recognize.
var ErrUnknownAlgorithm = errors.New("runner: unknown algorithm name")
