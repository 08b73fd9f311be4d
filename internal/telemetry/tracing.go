package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"measure/pkg/report"
)

const tracerName = "measure"

// Tracer records one span per suite, study and case.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewTracer returns a Tracer exporting spans as JSON to w. Spans are
// exported synchronously when they end, between cases, so no background
// goroutine competes with the measured code.
func NewTracer(w io.Writer) (*Tracer, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}
	return NewTracerWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)), nil
}

// NewTracerWithProvider returns a Tracer using tp.
func NewTracerWithProvider(tp *sdktrace.TracerProvider) *Tracer {
	return &Tracer{provider: tp, tracer: tp.Tracer(tracerName)}
}

// Begin implements report.Reporter.
func (t *Tracer) Begin(ctx context.Context, ev report.Event) (context.Context, report.Finish) {
	ctx, span := t.tracer.Start(ctx, ev.Kind.String()+" "+ev.Label,
		trace.WithAttributes(
			attribute.String("measure.kind", ev.Kind.String()),
			attribute.String("measure.label", ev.Label),
		),
	)
	return ctx, func(o report.Outcome) {
		span.SetAttributes(attribute.Float64("measure.elapsed_seconds", o.Elapsed.Seconds()))
		if o.Err != nil {
			span.RecordError(o.Err)
			span.SetStatus(codes.Error, o.Err.Error())
		}
		span.End()
	}
}

// Shutdown flushes and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}
