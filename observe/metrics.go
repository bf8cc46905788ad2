package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records health-severity transitions observed by components and
// the aggregator.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordTransition records a debounced severity transition for a
	// component or the aggregator. origin is "component" or "aggregator".
	RecordTransition(ctx context.Context, origin, name, severity string)

	// RecordDebounceLatency records the time between a debounce trigger
	// and its fire for a component or the aggregator.
	RecordDebounceLatency(ctx context.Context, origin, name string, latency time.Duration)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter            metric.Meter
	componentCount   metric.Int64Counter
	aggregatorCount  metric.Int64Counter
	debounceLatency  metric.Float64Histogram
}

// NewMetrics creates a Metrics instance backed by the given OpenTelemetry
// meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

// NewNoopMetrics returns a Metrics implementation that records nothing.
func NewNoopMetrics() Metrics {
	return &noopMetrics{}
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	componentCount, err := meter.Int64Counter(
		"apphealth.component.transitions",
		metric.WithDescription("Debounced component severity transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	aggregatorCount, err := meter.Int64Counter(
		"apphealth.aggregator.transitions",
		metric.WithDescription("Debounced aggregator severity transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	debounceLatency, err := meter.Float64Histogram(
		"apphealth.debounce.latency_ms",
		metric.WithDescription("Time between a debounce trigger and its fire"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:           meter,
		componentCount:  componentCount,
		aggregatorCount: aggregatorCount,
		debounceLatency: debounceLatency,
	}, nil
}

// RecordTransition records a debounced severity transition.
func (m *metricsImpl) RecordTransition(ctx context.Context, origin, name, severity string) {
	opt := metric.WithAttributes(
		attribute.String("name", name),
		attribute.String("severity", severity),
	)

	switch origin {
	case "aggregator":
		m.aggregatorCount.Add(ctx, 1, opt)
	default:
		m.componentCount.Add(ctx, 1, opt)
	}
}

// RecordDebounceLatency records debounce latency in milliseconds.
func (m *metricsImpl) RecordDebounceLatency(ctx context.Context, origin, name string, latency time.Duration) {
	opt := metric.WithAttributes(
		attribute.String("origin", origin),
		attribute.String("name", name),
	)
	m.debounceLatency.Record(ctx, float64(latency.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordTransition(ctx context.Context, origin, name, severity string) {}

func (m *noopMetrics) RecordDebounceLatency(ctx context.Context, origin, name string, latency time.Duration) {
}
