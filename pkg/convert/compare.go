package convert

import "measure/pkg/block"

// Comparison relates the mean of a case to the mean of its baseline.
type Comparison struct {
	// Delta is current minus baseline.
	Delta float64
	// Variation is Delta relative to the baseline.
	Variation float64
	// Performance is baseline over current; above 1 means faster.
	Performance float64
}

// Compare computes how current relates to baseline.
func Compare(baseline, current float64) Comparison {
	delta := current - baseline
	return Comparison{
		Delta:       delta,
		Variation:   delta / baseline,
		Performance: baseline / current,
	}
}

// baselineOf returns the first result tagged as baseline.
func baselineOf[T any](results []block.Result[T]) (block.Result[T], bool) {
	for _, r := range results {
		if r.Tag == block.Baseline {
			return r, true
		}
	}
	return block.Result[T]{}, false
}
