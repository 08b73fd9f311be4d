// Package telemetry observes benchmark runs: structured logs, prometheus
// metrics and opentelemetry traces, each exposed as a report.Reporter.
package telemetry

import (
	"context"

	"measure/pkg/report"
)

// scope is the suite and study enclosing an event.
type scope struct {
	suite string
	study string
}

type scopeKey struct{}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// enter returns the context of ev's work and the scope ev runs in.
func enter(ctx context.Context, ev report.Event) (context.Context, scope) {
	s := scopeFrom(ctx)
	switch ev.Kind {
	case report.KindSuite:
		s = scope{suite: ev.Label}
	case report.KindStudy:
		s.study = ev.Label
	default:
		return ctx, s
	}
	return context.WithValue(ctx, scopeKey{}, s), s
}
