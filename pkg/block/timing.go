package block

import (
	"fmt"
	"time"
)

// nowFunc is the clock used by timing and repeat blocks. time.Now carries a
// monotonic reading, so durations are immune to wall clock changes.
var nowFunc = time.Now

// Signpost narrows the measured region of a timed closure.
type Signpost int

const (
	// Start marks the beginning of the measured region.
	Start Signpost = 1 << iota
	// Stop marks the end of the measured region.
	Stop
)

func (s Signpost) String() string {
	switch s {
	case Start:
		return "start"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("signpost(%d)", int(s))
	}
}

// Mark is handed to timed closures. Calling it with Start or Stop records the
// corresponding boundary. Each may be used at most once.
type Mark func(Signpost)

// MeasureTime returns a Block that runs fn once and produces its elapsed time.
//
// The timer starts right before fn is called and stops right after it returns,
// unless fn calls mark(Start) or mark(Stop), which replace the corresponding
// boundary. Setup and teardown inside fn can be excluded this way.
//
// Calling mark twice with the same signpost, or with anything other than Start
// or Stop, is a broken benchmark definition and panics.
func MeasureTime(label string, fn func(mark Mark) error) Block[Void, time.Duration] {
	return New(label, func(Void) (time.Duration, error) {
		var explicitStart, explicitStop *time.Time

		mark := func(s Signpost) {
			now := nowFunc()
			switch s {
			case Start:
				if explicitStart != nil {
					panic("block: mark(Start) was called more than once")
				}
				explicitStart = &now
			case Stop:
				if explicitStop != nil {
					panic("block: mark(Stop) was called more than once")
				}
				explicitStop = &now
			default:
				panic(fmt.Sprintf("block: only Start and Stop signposts are supported, got %v", s))
			}
		}

		start := nowFunc()
		if err := fn(mark); err != nil {
			return 0, err
		}
		stop := nowFunc()

		if explicitStart != nil {
			start = *explicitStart
		}
		if explicitStop != nil {
			stop = *explicitStop
		}
		return stop.Sub(start), nil
	})
}

// Timed returns a Block measuring the whole execution of b. The output of b
// is discarded.
func Timed[In, Out any](b Block[In, Out]) Block[In, time.Duration] {
	return derive(b, func(input In) (time.Duration, error) {
		start := nowFunc()
		if _, err := b.Call(input); err != nil {
			return 0, err
		}
		return nowFunc().Sub(start), nil
	})
}
