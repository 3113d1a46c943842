// Package telemetry holds the tracer, meters and prometheus collectors used
// by the generation pipeline. Everything is a no-op until the process installs
// an OpenTelemetry provider or scrapes the default prometheus registry.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for generation.
var (
	tracer = otel.Tracer("geogen.generator")
	meter  = otel.Meter("geogen.generator")
)

// Prometheus collectors.
var (
	candidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geogen_candidates_total",
		Help: "Candidate configurations by filter outcome",
	}, []string{"outcome"})

	layerDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "geogen_layer_duration_seconds",
		Help:    "Time to expand one generation layer",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 100},
	})

	registryObjects = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geogen_registry_objects",
		Help: "Objects interned by the most recent generation run",
	})
)

// OpenTelemetry instruments.
var (
	layerSize   metric.Int64Histogram
	resultTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		layerSize, err = meter.Int64Histogram(
			"geogen_layer_size",
			metric.WithDescription("Configurations surviving a generation layer"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		resultTotal, err = meter.Int64Counter(
			"geogen_results_total",
			metric.WithDescription("Configurations yielded to consumers"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// StartRunSpan opens the span covering one Generate call.
func StartRunSpan(ctx context.Context, runID string, iterations, constructions int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Generator.Generate",
		trace.WithAttributes(
			attribute.String("geogen.run_id", runID),
			attribute.Int("geogen.iterations", iterations),
			attribute.Int("geogen.constructions", constructions),
		),
	)
}

// StartLayerSpan opens the span covering the expansion of one layer.
func StartLayerSpan(ctx context.Context, iteration, inputs int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Generator.Layer",
		trace.WithAttributes(
			attribute.Int("geogen.iteration", iteration),
			attribute.Int("geogen.layer.inputs", inputs),
		),
	)
}

// EndLayer records the layer outcome on span and in the metrics, then ends span.
func EndLayer(ctx context.Context, span trace.Span, iteration, outputs int, elapsed time.Duration) {
	span.SetAttributes(attribute.Int("geogen.layer.outputs", outputs))
	span.End()

	layerDuration.Observe(elapsed.Seconds())
	if err := initMetrics(); err != nil {
		return
	}
	layerSize.Record(ctx, int64(outputs), metric.WithAttributes(attribute.Int("iteration", iteration)))
}

// RecordCandidate counts one filter outcome.
func RecordCandidate(outcome string) {
	candidatesTotal.WithLabelValues(outcome).Inc()
}

// RecordResult counts one yielded configuration.
func RecordResult(ctx context.Context, iteration int) {
	if err := initMetrics(); err != nil {
		return
	}
	resultTotal.Add(ctx, 1, metric.WithAttributes(attribute.Int("iteration", iteration)))
}

// SetRegistrySize publishes the number of interned objects.
func SetRegistrySize(n int) {
	registryObjects.Set(float64(n))
}
