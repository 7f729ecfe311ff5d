package runner

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/deadstate/classify"
)

// Output is the grouped classification of every identifier mentioned
// in a transaction log, per spec section 6.2: four sorted lists of
// vertex identifiers, one per status.
type Output struct {
	Open    []int `json:"open"`
	Unknown []int `json:"unknown"`
	Dead    []int `json:"dead"`
	Live    []int `json:"live"`
}

// Result is a runner → caller report for one (example, algorithm) pair
// (spec section 6.3): either the run hit its timeout between two
// transactions, or it completed with an Output, an optional
// correctness verdict against an expected-output file, and debug
// time/space counters.
type Result struct {
	RunID     uuid.UUID `json:"run_id"`
	Algorithm string    `json:"algorithm"`
	TimedOut  bool      `json:"timed_out"`
	Output    Output    `json:"output,omitempty"`
	Correct   *bool     `json:"correct,omitempty"`
	Time      int64     `json:"time"`
	Space     int64     `json:"space"`
	Elapsed   time.Duration `json:"elapsed"`
}

// NewAlgorithm constructs a fresh classify.Algorithm by name, the
// runner's string-keyed counterpart to classify's five constructors --
// used by cmd/deadstate's --algorithm flag and by compare's fan-out
// over every algorithm.
func NewAlgorithm(name string) (classify.Algorithm, error) {
	switch name {
	case "naive":
		return classify.NewNaive(), nil
	case "simple":
		return classify.NewSimple(), nil
	case "bfgt":
		return classify.NewBFGT(), nil
	case "jump":
		return classify.NewJump(), nil
	case "polylog":
		return classify.NewPolylog(false), nil
	case "polylog-optimized":
		return classify.NewPolylog(true), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// AlgorithmNames lists every name NewAlgorithm accepts, in the
// deterministic order cmd/deadstate compare iterates them.
func AlgorithmNames() []string {
	return []string{"naive", "simple", "bfgt", "jump", "polylog", "polylog-optimized"}
}
