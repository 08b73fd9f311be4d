package study

import (
	"time"

	"measure/pkg/block"
	"measure/pkg/stats"
)

// Time is a study whose cases produce execution time measures in seconds.
type Time = Study[block.Void, stats.Measure]

// DefaultReferenceLabel labels reference cases added without a label.
const DefaultReferenceLabel = "Reference"

// Option configures a timed case.
type Option func(*caseConfig)

type caseConfig struct {
	tag    block.Tag
	bounds block.Bounds
}

// WithTag tags the case.
func WithTag(tag block.Tag) Option {
	return func(c *caseConfig) { c.tag = tag }
}

// WithBounds overrides the repeat bounds of the case.
func WithBounds(bounds block.Bounds) Option {
	return func(c *caseConfig) { c.bounds = bounds }
}

// TimeCase builds the block behind a timed case: fn is measured repeatedly
// within the bounds and the samples are reduced to a Measure. Absent samples
// produce a zero Measure.
func TimeCase(label string, fn func(mark block.Mark) error, opts ...Option) block.Block[block.Void, stats.Measure] {
	cfg := caseConfig{bounds: block.DefaultBounds()}
	for _, opt := range opts {
		opt(&cfg)
	}

	samples := block.Repeat(block.MeasureTime(label, fn), cfg.bounds)
	measure := block.Map(samples, func(durations []time.Duration) (*stats.Measure, error) {
		seconds := make([]float64, len(durations))
		for i, d := range durations {
			seconds[i] = d.Seconds()
		}
		m, ok := stats.Extract(seconds)
		if !ok {
			return nil, nil
		}
		return &m, nil
	})
	return block.Unwrap(measure, func() stats.Measure { return stats.Single(0) }).WithTag(cfg.tag)
}

// Benchmark adds a case measuring the execution time of fn. See
// block.MeasureTime for the use of mark.
func Benchmark(s *Time, label string, fn func(mark block.Mark) error, opts ...Option) error {
	return s.AddCase(TimeCase(label, fn, opts...))
}

// BenchmarkReference adds the baseline case of s. An empty label defaults to
// DefaultReferenceLabel.
func BenchmarkReference(s *Time, label string, fn func(mark block.Mark) error, opts ...Option) error {
	if label == "" {
		label = DefaultReferenceLabel
	}
	opts = append(opts, WithTag(block.Baseline))
	return s.AddCase(TimeCase(label, fn, opts...))
}

// BenchmarkFunc is Benchmark for closures that do not narrow the measured region.
func BenchmarkFunc(s *Time, label string, fn func() error, opts ...Option) error {
	return Benchmark(s, label, ignoreMark(fn), opts...)
}

// BenchmarkReferenceFunc is BenchmarkReference for closures that do not
// narrow the measured region.
func BenchmarkReferenceFunc(s *Time, label string, fn func() error, opts ...Option) error {
	return BenchmarkReference(s, label, ignoreMark(fn), opts...)
}

func ignoreMark(fn func() error) func(block.Mark) error {
	return func(block.Mark) error { return fn() }
}
