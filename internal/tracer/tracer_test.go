package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNoopTracer(t *testing.T) {
	tracer := &NoopTracer{}
	ctx := context.Background()

	// Should not panic
	_, span := tracer.StartSpan(ctx, "test.operation")
	assert.NotNil(t, span)

	span.SetAttributes(attribute.String("key", "value"))
	span.RecordError(errors.New("test error"))
	span.SetStatus(codes.Error, "error")
	span.End()
}

func TestOtelTracer(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	otel.SetTracerProvider(tp)

	tracer := NewOtelTracer(otel.Tracer("test"))

	ctx := context.Background()
	_, span := tracer.StartSpan(ctx, "sqlmorph.convert")
	assert.NotNil(t, span)

	span.SetAttributes(attribute.String("key", "value"))
	span.SetStatus(codes.Ok, "")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "sqlmorph.convert", spans[0].Name)
}

func TestAddConversionAttributes_Success(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := NewOtelTracer(tp.Tracer("test"))

	_, span := tracer.StartSpan(context.Background(), "sqlmorph.convert")
	AddConversionAttributes(span, &ConversionMetadata{
		Source:      "mysql",
		Target:      "postgres",
		InputBytes:  100,
		OutputBytes: 95,
		Passes:      6,
		Duration:    2 * time.Millisecond,
		Warnings:    1,
	})
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "mysql", attrs["sqlmorph.source_dialect"].AsString())
	assert.Equal(t, "postgres", attrs["sqlmorph.target_dialect"].AsString())
	assert.Equal(t, int64(6), attrs["sqlmorph.passes"].AsInt64())
	assert.Equal(t, int64(1), attrs["sqlmorph.warnings"].AsInt64())
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestAddConversionAttributes_Error(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := NewOtelTracer(tp.Tracer("test"))

	_, span := tracer.StartSpan(context.Background(), "sqlmorph.convert")
	AddConversionAttributes(span, &ConversionMetadata{
		Source: "mysql",
		Target: "postgres",
		Error:  errors.New("boom"),
	})
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	require.Len(t, spans[0].Events, 1, "error should be recorded as an event")
}

func TestDetectStatement(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"CREATE TABLE t (id INT)", "CREATE"},
		{"  alter table t add c int", "ALTER"},
		{"DROP TABLE t", "DROP"},
		{"SELECT * FROM t", "SELECT"},
		{"with cte as (select 1) select * from cte", "SELECT"},
		{"INSERT INTO t VALUES (1)", "INSERT"},
		{"update t set a = 1", "UPDATE"},
		{"DELETE FROM t", "DELETE"},
		{"GRANT ALL ON t TO x", "UNKNOWN"},
		{"", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectStatement(tt.sql))
		})
	}
}
