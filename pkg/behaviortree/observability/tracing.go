package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for tick spans.
const TracerName = "behaviortree"

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartTickSpan starts a span covering one tick of a tree.
	StartTickSpan(ctx context.Context, tree, tickID string) (context.Context, trace.Span)

	// EndSpanWithStatus records the tick status and optional error, then ends the span.
	EndSpanWithStatus(span trace.Span, status string, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The tracer is taken from the global OTel tracer provider at call time.
// Configure the provider first:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{tracer: otel.Tracer(TracerName)}
}

// StartTickSpan starts a span for a tick.
func (m *otelSpanManager) StartTickSpan(ctx context.Context, tree, tickID string) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "behaviortree.tick",
		trace.WithAttributes(
			attribute.String("tree.name", tree),
			attribute.String("tick.id", tickID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithStatus completes a span.
// Fail is an ordinary tick result, so only err marks the span as an error.
func (m *otelSpanManager) EndSpanWithStatus(span trace.Span, status string, err error) {
	if span == nil {
		return
	}
	if status != "" {
		span.SetAttributes(attribute.String("tick.status", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
