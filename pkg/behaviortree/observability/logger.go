// Package observability provides logging, metrics, and tracing for
// behaviour tree ticks.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Instrumentation happens around a whole tick, never inside node
// evaluation.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds tick context to a logger.
// Returns a new logger with tree and tick_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "patrol", "0b9c...")
//	enriched.Info("door is locked") // includes tree, tick_id
func EnrichLogger(logger *slog.Logger, tree, tickID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("tree", tree),
		slog.String("tick_id", tickID),
	)
}

// LogTickStart logs the start of a tick.
func LogTickStart(logger *slog.Logger, tree, tickID string) {
	if logger == nil {
		return
	}
	logger.Debug("tick starting",
		slog.String("tree", tree),
		slog.String("tick_id", tickID),
	)
}

// LogTickComplete logs a tick that produced a status.
func LogTickComplete(logger *slog.Logger, tree, tickID, status string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("tick completed",
		slog.String("tree", tree),
		slog.String("tick_id", tickID),
		slog.String("status", status),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogTickError logs a tick that ended with an error.
func LogTickError(logger *slog.Logger, tree, tickID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("tick failed",
		slog.String("tree", tree),
		slog.String("tick_id", tickID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogHistoryError logs a failure to record a tick.
func LogHistoryError(logger *slog.Logger, tree, tickID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("tick history write failed",
		slog.String("tree", tree),
		slog.String("tick_id", tickID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
