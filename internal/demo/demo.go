// Package demo holds the built-in suites of the measure command.
package demo

import (
	"measure/pkg/bench"
	"measure/pkg/block"
	"measure/pkg/suite"
)

// Options sizes the demo workloads.
type Options struct {
	Bounds block.Bounds
	// ArraySize is the length of the arrays summed and sorted by timed cases.
	ArraySize int
	// ComparisonSizes are the array lengths whose sorting comparisons are counted.
	ComparisonSizes []int
	Seed            uint64
}

// DefaultOptions returns the workloads run by the measure command.
func DefaultOptions(bounds block.Bounds) Options {
	return Options{
		Bounds:          bounds,
		ArraySize:       10000,
		ComparisonSizes: []int{10, 100, 250, 500, 1000, 2500, 5000, 10000},
		Seed:            0,
	}
}

// Register adds the demo suites to r.
func Register(r *bench.Registry, opts Options, suiteOpts ...suite.Option) error {
	if _, err := r.Suite("Array sum", func(s *bench.Suite) error {
		return addArraySum(s, opts)
	}, suiteOpts...); err != nil {
		return err
	}
	if _, err := r.Suite("Sorting algorithms", func(s *bench.Suite) error {
		return addSorting(s, opts)
	}, suiteOpts...); err != nil {
		return err
	}
	return nil
}
