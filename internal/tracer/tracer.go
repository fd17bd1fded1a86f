// Package tracer provides distributed tracing abstractions for sqlmorph.
// It supports OpenTelemetry and allows custom tracer implementations.
package tracer

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer defines the tracing interface for sqlmorph.
// Implementations can provide OpenTelemetry, Jaeger, or custom tracing.
type Tracer interface {
	// StartSpan starts a new tracing span with the given name
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span that captures the execution of an operation.
type Span interface {
	// SetAttributes sets key-value attributes on the span
	SetAttributes(attrs ...attribute.KeyValue)
	// RecordError records an error that occurred during the span
	RecordError(err error)
	// SetStatus sets the status code and description of the span
	SetStatus(code codes.Code, description string)
	// End marks the span as complete
	End()
}

// NoopTracer is a tracer that does nothing (zero overhead when tracing is
// disabled). This is the default tracer used by a conversion session.
type NoopTracer struct{}

// StartSpan returns the context unchanged with a no-op span.
func (n *NoopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, &NoopSpan{}
}

// NoopSpan is a span that does nothing.
type NoopSpan struct{}

// SetAttributes does nothing.
func (n *NoopSpan) SetAttributes(_ ...attribute.KeyValue) {}

// RecordError does nothing.
func (n *NoopSpan) RecordError(_ error) {}

// SetStatus does nothing.
func (n *NoopSpan) SetStatus(_ codes.Code, _ string) {}

// End does nothing.
func (n *NoopSpan) End() {}

// OtelTracer wraps an OpenTelemetry tracer to implement the Tracer interface.
type OtelTracer struct {
	tracer trace.Tracer
}

// NewOtelTracer creates a new OpenTelemetry tracer adapter.
// The provided tracer must not be nil.
func NewOtelTracer(tracer trace.Tracer) *OtelTracer {
	return &OtelTracer{tracer: tracer}
}

// StartSpan starts a new OpenTelemetry span.
func (t *OtelTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OtelSpan{span: span}
}

// OtelSpan wraps an OpenTelemetry span.
type OtelSpan struct {
	span trace.Span
}

// SetAttributes sets OpenTelemetry attributes on the span.
func (s *OtelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	s.span.SetAttributes(attrs...)
}

// RecordError records an error on the OpenTelemetry span.
func (s *OtelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

// SetStatus sets the status of the OpenTelemetry span.
func (s *OtelSpan) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(code, description)
}

// End completes the OpenTelemetry span.
func (s *OtelSpan) End() {
	s.span.End()
}

// ConversionMetadata contains information about one schema conversion for
// tracing purposes.
type ConversionMetadata struct {
	// Source is the resolved source dialect name
	Source string
	// Target is the resolved target dialect name
	Target string
	// InputBytes is the size of the input SQL text
	InputBytes int
	// OutputBytes is the size of the converted output (0 on failure)
	OutputBytes int
	// Passes is the number of rewrite passes executed
	Passes int
	// Duration is how long the conversion took
	Duration time.Duration
	// Warnings is the number of warnings collected
	Warnings int
	// Error is the aggregated conversion error, if any
	Error error
}

// AddConversionAttributes adds conversion attributes to a span and sets its
// status from the conversion outcome.
func AddConversionAttributes(span Span, meta *ConversionMetadata) {
	span.SetAttributes(
		attribute.String("sqlmorph.source_dialect", meta.Source),
		attribute.String("sqlmorph.target_dialect", meta.Target),
		attribute.Int("sqlmorph.input_bytes", meta.InputBytes),
		attribute.Int("sqlmorph.output_bytes", meta.OutputBytes),
		attribute.Int("sqlmorph.passes", meta.Passes),
		attribute.Int("sqlmorph.warnings", meta.Warnings),
		attribute.Float64("sqlmorph.duration_ms", float64(meta.Duration.Microseconds())/1000.0),
	)

	if meta.Error != nil {
		span.RecordError(meta.Error)
		span.SetStatus(codes.Error, meta.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// DetectStatement detects the leading SQL statement kind of a text buffer.
// Returns one of: CREATE, ALTER, DROP, SELECT, INSERT, UPDATE, DELETE,
// or UNKNOWN.
func DetectStatement(sql string) string {
	sql = strings.TrimSpace(strings.ToUpper(sql))
	for _, kind := range []string{"CREATE", "ALTER", "DROP", "SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sql, kind) {
			return kind
		}
	}
	if strings.HasPrefix(sql, "WITH") {
		return "SELECT"
	}
	return "UNKNOWN"
}
