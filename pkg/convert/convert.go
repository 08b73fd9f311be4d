// Package convert turns the typed results of a study into the common input
// type of a suite, which lets studies of different types share one suite.
package convert

import "measure/pkg/block"

// Converter maps the results of a study with output Out to a suite input In.
type Converter[Out, In any] func(results []block.Result[Out]) In

// Convert applies c to results.
func (c Converter[Out, In]) Convert(results []block.Result[Out]) In {
	return c(results)
}
