package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRecordCandidate(t *testing.T) {
	before := testutil.ToFloat64(candidatesTotal.WithLabelValues("symmetric"))
	RecordCandidate("symmetric")
	RecordCandidate("symmetric")

	assert.Equal(t, before+2, testutil.ToFloat64(candidatesTotal.WithLabelValues("symmetric")))
}

func TestSetRegistrySize(t *testing.T) {
	SetRegistrySize(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(registryObjects))
}

func TestLayerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = provider.Shutdown(context.Background()) }()
	otel.SetTracerProvider(provider)

	ctx, run := StartRunSpan(context.Background(), "run-1", 2, 1)
	_, layer := StartLayerSpan(ctx, 1, 3)
	EndLayer(ctx, layer, 1, 5, time.Millisecond)
	run.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "Generator.Layer", ended[0].Name())
	assert.Equal(t, "Generator.Generate", ended[1].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
	assert.Contains(t, ended[0].Attributes(), attribute.Int("geogen.layer.outputs", 5))
}

func TestInitMetricsIdempotent(t *testing.T) {
	require.NoError(t, initMetrics())
	require.NoError(t, initMetrics())
	RecordResult(context.Background(), 2)
}
