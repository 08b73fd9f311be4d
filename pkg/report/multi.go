package report

import "context"

// Multi fans every notification out to all reporters, in order.
func Multi(reporters ...Reporter) Reporter {
	filtered := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &multiReporter{reporters: filtered}
}

type multiReporter struct {
	reporters []Reporter
}

func (m *multiReporter) Begin(ctx context.Context, ev Event) (context.Context, Finish) {
	finishers := make([]Finish, 0, len(m.reporters))
	for _, r := range m.reporters {
		var finish Finish
		ctx, finish = r.Begin(ctx, ev)
		finishers = append(finishers, finish)
	}
	return ctx, func(o Outcome) {
		// Close in reverse so nested scopes unwind properly.
		for i := len(finishers) - 1; i >= 0; i-- {
			finishers[i](o)
		}
	}
}
