// Package stats aggregates floating point samples into a Measure.
package stats

import "math"

// Float is the set of sample types Extract accepts.
type Float interface {
	~float32 | ~float64
}

// Measure is a mean value with its population standard deviation and the
// number of samples it was computed from.
type Measure struct {
	Value float64 `json:"value" yaml:"value"`
	// Std is the population standard deviation.
	Std float64 `json:"std" yaml:"std"`
	// Count is the size of the population. It is at least 1.
	Count int `json:"count" yaml:"count"`
}

// Single returns the Measure of exactly one sample.
func Single(value float64) Measure {
	return Measure{Value: value, Std: 0, Count: 1}
}

// Error returns the standard error of the mean.
func (m Measure) Error() float64 {
	if m.Count < 1 {
		return 0
	}
	return m.Std / math.Sqrt(float64(m.Count))
}

// Extract computes the mean and population standard deviation of samples.
// It returns false when samples is empty.
func Extract[F Float](samples []F) (Measure, bool) {
	switch len(samples) {
	case 0:
		return Measure{}, false
	case 1:
		return Single(float64(samples[0])), true
	}

	n := float64(len(samples))
	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	mean := sum / n

	var squares float64
	for _, s := range samples {
		d := float64(s) - mean
		squares += d * d
	}

	return Measure{
		Value: mean,
		Std:   math.Sqrt(squares / n),
		Count: len(samples),
	}, true
}
