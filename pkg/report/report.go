// Package report carries progress notifications out of suite and study
// execution. Reporters only observe; they never change results.
package report

import (
	"context"
	"time"
)

// Kind is the granularity of an Event.
type Kind int

const (
	KindSuite Kind = iota
	KindStudy
	KindCase
)

func (k Kind) String() string {
	switch k {
	case KindSuite:
		return "suite"
	case KindStudy:
		return "study"
	case KindCase:
		return "case"
	default:
		return "unknown"
	}
}

// Event describes a unit of work that is about to run.
type Event struct {
	Kind  Kind
	Label string
}

// Outcome describes how a unit of work ended.
type Outcome struct {
	Elapsed time.Duration
	Err     error
}

// Finish is called exactly once when the work announced by Begin ends.
type Finish func(Outcome)

// Reporter receives progress notifications. Begin returns the context the
// announced work runs in, so nested events can be correlated.
type Reporter interface {
	Begin(ctx context.Context, ev Event) (context.Context, Finish)
}

// Discard ignores every notification.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Begin(ctx context.Context, _ Event) (context.Context, Finish) {
	return ctx, func(Outcome) {}
}

type contextKey struct{}

// NewContext returns a context carrying r.
func NewContext(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the Reporter carried by ctx, or Discard.
func FromContext(ctx context.Context) Reporter {
	if r, ok := ctx.Value(contextKey{}).(Reporter); ok && r != nil {
		return r
	}
	return Discard
}

// Track announces ev to the reporter carried by ctx and returns a function
// that reports the outcome, measuring the elapsed time itself.
func Track(ctx context.Context, ev Event) (context.Context, func(error)) {
	ctx, finish := FromContext(ctx).Begin(ctx, ev)
	start := time.Now()
	return ctx, func(err error) {
		finish(Outcome{Elapsed: time.Since(start), Err: err})
	}
}
