package telemetry

import (
	"context"
	"log/slog"

	"measure/pkg/report"
)

// NewLogReporter returns a reporter logging progress notifications to
// logger. Failures are logged at error level, everything else at debug level.
func NewLogReporter(logger *slog.Logger) report.Reporter {
	return &logReporter{logger: logger}
}

type logReporter struct {
	logger *slog.Logger
}

func (r *logReporter) Begin(ctx context.Context, ev report.Event) (context.Context, report.Finish) {
	ctx, s := enter(ctx, ev)

	attrs := []any{slog.String("suite", s.suite)}
	switch ev.Kind {
	case report.KindStudy:
		attrs = append(attrs, slog.String("study", s.study))
	case report.KindCase:
		attrs = append(attrs, slog.String("study", s.study), slog.String("case", ev.Label))
	}

	r.logger.DebugContext(ctx, ev.Kind.String()+" started", attrs...)
	return ctx, func(o report.Outcome) {
		done := append(attrs[:len(attrs):len(attrs)], slog.Duration("elapsed", o.Elapsed))
		if o.Err != nil {
			r.logger.ErrorContext(ctx, ev.Kind.String()+" failed", append(done, slog.Any("error", o.Err))...)
			return
		}
		r.logger.DebugContext(ctx, ev.Kind.String()+" finished", done...)
	}
}
