package behaviortree

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/randalmurphal/behaviortree/pkg/behaviortree/history"
	"github.com/randalmurphal/behaviortree/pkg/behaviortree/observability"
)

// treeConfig holds configuration for ticking a tree.
type treeConfig struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	history history.Store
	newID   func() string
}

// defaultTreeConfig returns the default configuration: no logging,
// no metrics, no tracing, no history, UUID tick IDs.
func defaultTreeConfig() treeConfig {
	return treeConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		newID:   uuid.NewString,
	}
}

// TreeOption configures a Tree.
type TreeOption func(*treeConfig)

// WithLogger sets the logger for tick logs.
// Completed ticks are logged at info, tick starts at debug.
// Default: no logging.
func WithLogger(logger *slog.Logger) TreeOption {
	return func(c *treeConfig) {
		c.logger = logger
	}
}

// WithMetrics enables or disables OpenTelemetry metrics.
// Default: disabled.
//
// When enabled, records:
//   - behaviortree.tick.count (counter by tree and status)
//   - behaviortree.tick.latency_ms (histogram)
//   - behaviortree.tick.errors (counter)
//   - behaviortree.history.writes (counter)
//
// Uses the global OTel meter provider.
func WithMetrics(enabled bool) TreeOption {
	return func(c *treeConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables or disables OpenTelemetry tracing.
// Default: disabled.
//
// When enabled, each tick gets a "behaviortree.tick" span carrying the
// tree name, tick ID and resulting status.
//
// Uses the global OTel tracer provider.
func WithTracing(enabled bool) TreeOption {
	return func(c *treeConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithHistory records the outcome of every tick in store.
// The Tree does not close the store.
func WithHistory(store history.Store) TreeOption {
	return func(c *treeConfig) {
		c.history = store
	}
}

// WithTickIDGenerator replaces the UUID generator used for tick IDs.
func WithTickIDGenerator(fn func() string) TreeOption {
	return func(c *treeConfig) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithMetricsRecorder sets the metrics recorder directly.
// Useful for tests or for a recorder bound to a specific meter provider.
func WithMetricsRecorder(m observability.MetricsRecorder) TreeOption {
	return func(c *treeConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager directly.
func WithSpanManager(s observability.SpanManager) TreeOption {
	return func(c *treeConfig) {
		if s != nil {
			c.spans = s
		}
	}
}
