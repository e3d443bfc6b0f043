package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a meter provider backed by a manual reader.
func setupMetricsTest(t *testing.T) *sdkmetric.ManualReader {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	})

	return reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumFor returns the counter value for the data point carrying all attrs.
func sumFor(t *testing.T, m *metricdata.Metrics, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected Sum[int64], got %T", m.Data)
	var total int64
	for _, dp := range sum.DataPoints {
		match := true
		for _, kv := range attrs {
			v, ok := dp.Attributes.Value(kv.Key)
			if !ok || v.Emit() != kv.Value.Emit() {
				match = false
				break
			}
		}
		if match {
			total += dp.Value
		}
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	setupMetricsTest(t)

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordTick(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordTick(ctx, "patrol", "running", 20*time.Millisecond, nil)
	m.RecordTick(ctx, "patrol", "running", 10*time.Millisecond, nil)
	m.RecordTick(ctx, "patrol", "success", 5*time.Millisecond, nil)
	m.RecordTick(ctx, "patrol", "", time.Millisecond, errors.New("panic"))

	rm := collectMetrics(t, reader)

	count := findMetric(rm, "behaviortree.tick.count")
	require.NotNil(t, count)
	assert.Equal(t, int64(2), sumFor(t, count, attribute.String("status", "running")))
	assert.Equal(t, int64(1), sumFor(t, count, attribute.String("status", "success")))
	assert.Equal(t, int64(4), sumFor(t, count, attribute.String("tree", "patrol")))

	errs := findMetric(rm, "behaviortree.tick.errors")
	require.NotNil(t, errs)
	assert.Equal(t, int64(1), sumFor(t, errs, attribute.String("tree", "patrol")))

	latency := findMetric(rm, "behaviortree.tick.latency_ms")
	require.NotNil(t, latency)
	hist, ok := latency.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var samples uint64
	for _, dp := range hist.DataPoints {
		samples += dp.Count
	}
	assert.Equal(t, uint64(4), samples)
}

func TestRecordHistoryWrite(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordHistoryWrite(ctx, "patrol", nil)
	m.RecordHistoryWrite(ctx, "patrol", nil)
	m.RecordHistoryWrite(ctx, "patrol", errors.New("disk full"))

	rm := collectMetrics(t, reader)
	writes := findMetric(rm, "behaviortree.history.writes")
	require.NotNil(t, writes)
	assert.Equal(t, int64(2), sumFor(t, writes, attribute.Bool("success", true)))
	assert.Equal(t, int64(1), sumFor(t, writes, attribute.Bool("success", false)))
}
