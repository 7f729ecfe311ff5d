package runner

import "github.com/katalvlaran/deadstate/classify"

// Divergence records two algorithms whose final Output disagreed for
// the same transaction log.
type Divergence struct {
	Left, Right     string
	LeftOut, RightOut Output
}

// Compare runs txs against every algorithm AlgorithmNames lists and
// checks P6 (spec section 8): on any prefix of any transaction log,
// every algorithm's get_status must agree for every vertex, modulo
// Naive never producing Live-propagation if Live never appears in the
// input -- which is moot here since Compare only checks the final
// Output, not intermediate states. It returns every pairwise
// divergence found, empty if all agree.
func Compare(txs []classify.Transaction, opts ...Option) ([]Result, []Divergence, error) {
	names := AlgorithmNames()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		res, err := Run(name, txs, opts...)
		if err != nil {
			return nil, nil, err
		}
		results = append(results, res)
	}

	var divergences []Divergence
	for i := 0; i < len(results); i++ {
		if results[i].TimedOut {
			continue
		}
		for j := i + 1; j < len(results); j++ {
			if results[j].TimedOut {
				continue
			}
			if !outputsEqual(results[i].Output, results[j].Output) {
				divergences = append(divergences, Divergence{
					Left: results[i].Algorithm, Right: results[j].Algorithm,
					LeftOut: results[i].Output, RightOut: results[j].Output,
				})
			}
		}
	}
	return results, divergences, nil
}
