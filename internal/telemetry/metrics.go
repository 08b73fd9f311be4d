package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"measure/pkg/report"
)

// Metrics collects prometheus metrics about benchmark runs on a registry of
// its own, so that nothing leaks into the global one.
type Metrics struct {
	registry *prometheus.Registry

	CaseDuration *prometheus.HistogramVec
	RunsTotal    *prometheus.CounterVec
	FailedTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark metrics.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.CaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "measure_case_duration_seconds",
			Help:    "Wall time spent running a benchmark case, all iterations included",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"suite", "study", "case"},
	)

	m.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "measure_runs_total",
			Help: "Total number of executed suites, studies and cases",
		},
		[]string{"kind"},
	)

	m.FailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "measure_failures_total",
			Help: "Total number of failed suites, studies and cases",
		},
		[]string{"kind"},
	)

	m.registry.MustRegister(m.CaseDuration, m.RunsTotal, m.FailedTotal)
	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Begin implements report.Reporter.
func (m *Metrics) Begin(ctx context.Context, ev report.Event) (context.Context, report.Finish) {
	ctx, s := enter(ctx, ev)
	kind := ev.Kind.String()
	return ctx, func(o report.Outcome) {
		m.RunsTotal.WithLabelValues(kind).Inc()
		if o.Err != nil {
			m.FailedTotal.WithLabelValues(kind).Inc()
		}
		if ev.Kind == report.KindCase {
			m.CaseDuration.WithLabelValues(s.suite, s.study, ev.Label).Observe(o.Elapsed.Seconds())
		}
	}
}

// WriteTextfile writes the metrics to path in the text exposition format,
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
