package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope used for all instruments.
const MeterName = "behaviortree"

// MetricsRecorder records tick metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordTick records one tick of a tree with its resulting status.
	// status is empty when the tick ended with an error before producing one.
	RecordTick(ctx context.Context, tree, status string, duration time.Duration, err error)

	// RecordHistoryWrite records an attempt to store a tick record.
	RecordHistoryWrite(ctx context.Context, tree string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	tickCount     metric.Int64Counter
	tickLatency   metric.Float64Histogram
	tickErrors    metric.Int64Counter
	historyWrites metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily creates the shared instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter(MeterName)

	tickCount, err := meter.Int64Counter("behaviortree.tick.count",
		metric.WithDescription("Number of tree ticks"),
	)
	if err != nil {
		return nil, err
	}

	tickLatency, err := meter.Float64Histogram("behaviortree.tick.latency_ms",
		metric.WithDescription("Tick latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	tickErrors, err := meter.Int64Counter("behaviortree.tick.errors",
		metric.WithDescription("Number of ticks that ended with an error"),
	)
	if err != nil {
		return nil, err
	}

	historyWrites, err := meter.Int64Counter("behaviortree.history.writes",
		metric.WithDescription("Number of tick history writes"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		tickCount:     tickCount,
		tickLatency:   tickLatency,
		tickErrors:    tickErrors,
		historyWrites: historyWrites,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordTick records a tick.
func (m *otelMetrics) RecordTick(ctx context.Context, tree, status string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("tree", tree),
		attribute.String("status", status),
	)

	m.tickCount.Add(ctx, 1, attrs)
	m.tickLatency.Record(ctx, Milliseconds(duration), attrs)

	if err != nil {
		m.tickErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("tree", tree)))
	}
}

// RecordHistoryWrite records a history write.
func (m *otelMetrics) RecordHistoryWrite(ctx context.Context, tree string, err error) {
	m.historyWrites.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tree", tree),
		attribute.Bool("success", err == nil),
	))
}
