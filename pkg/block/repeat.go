package block

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBounds indicates repeat bounds that cannot be honored.
var ErrInvalidBounds = errors.New("invalid repeat bounds")

// Bounds limits how many times, and for how long, Repeat runs a block.
// Both ranges are half open: [MinIterations, MaxIterations) and
// [MinDuration, MaxDuration). A zero MaxDuration disables the duration ceiling.
type Bounds struct {
	MinIterations int
	MaxIterations int
	MinDuration   time.Duration
	MaxDuration   time.Duration
}

// DefaultBounds returns iterations [1, 1_000_000) and duration [0s, 5s).
func DefaultBounds() Bounds {
	return Bounds{
		MinIterations: 1,
		MaxIterations: 1_000_000,
		MinDuration:   0,
		MaxDuration:   5 * time.Second,
	}
}

// Iterations returns bounds limited to [min, max) iterations with the default
// duration range.
func Iterations(min, max int) Bounds {
	b := DefaultBounds()
	b.MinIterations = min
	b.MaxIterations = max
	return b
}

// Validate reports bounds whose ceilings would contradict their floors.
func (b Bounds) Validate() error {
	switch {
	case b.MinIterations < 0:
		return fmt.Errorf("%w: minimum iterations %d is negative", ErrInvalidBounds, b.MinIterations)
	case b.MaxIterations < 1:
		return fmt.Errorf("%w: maximum iterations must be positive, got %d", ErrInvalidBounds, b.MaxIterations)
	case b.MinIterations > b.MaxIterations:
		return fmt.Errorf("%w: minimum iterations %d exceed maximum %d", ErrInvalidBounds, b.MinIterations, b.MaxIterations)
	case b.MinDuration < 0 || b.MaxDuration < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidBounds)
	case b.MaxDuration > 0 && b.MinDuration > b.MaxDuration:
		return fmt.Errorf("%w: minimum duration %v exceeds maximum %v", ErrInvalidBounds, b.MinDuration, b.MaxDuration)
	}
	return nil
}

// proceed reports whether another iteration should run. Floors are checked
// before ceilings.
func (b Bounds) proceed(iteration int, elapsed time.Duration) bool {
	if iteration < b.MinIterations {
		return true
	}
	if elapsed < b.MinDuration {
		return true
	}
	if iteration+1 >= b.MaxIterations {
		return false
	}
	if b.MaxDuration > 0 && elapsed >= b.MaxDuration {
		return false
	}
	return true
}

// Repeat runs b repeatedly against the same input and collects every output.
// It keeps going while either floor of bounds is unmet and stops as soon as a
// ceiling is reached. Any failure discards the outputs collected so far.
func Repeat[In, Out any](b Block[In, Out], bounds Bounds) Block[In, []Out] {
	return derive(b, func(input In) ([]Out, error) {
		if err := bounds.Validate(); err != nil {
			return nil, err
		}

		var outputs []Out
		start := nowFunc()
		for iteration := 0; bounds.proceed(iteration, nowFunc().Sub(start)); iteration++ {
			out, err := b.Call(input)
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, out)
		}
		return outputs, nil
	})
}

// RepeatN repeats b for at most n-1 iterations, at least once, within the
// default duration range.
func RepeatN[In, Out any](b Block[In, Out], n int) Block[In, []Out] {
	return Repeat(b, Iterations(1, n))
}
