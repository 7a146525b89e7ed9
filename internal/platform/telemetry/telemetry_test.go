package telemetry_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/telemetry"
)

func stdoutConfig() config.TelemetryConfig {
	return config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterStdout, ServiceName: "bookcatalog-test"}
}

func TestSetup_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Exporter: "bogus"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Nil(t, p.Metrics)
	assert.Nil(t, p.Tracer)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_StdoutExportsSpans(t *testing.T) {
	var out bytes.Buffer
	p, err := telemetry.Setup(context.Background(), stdoutConfig(), &out)
	require.NoError(t, err)
	require.NotNil(t, p.Metrics)

	assert.Same(t, p.Tracer, otel.GetTracerProvider())
	assert.Same(t, p.Meter, otel.GetMeterProvider())
	assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())

	_, span := otel.Tracer("test").Start(context.Background(), "GET /books/{id}")
	span.End()
	p.Metrics.ServerRequestTotal.Add(context.Background(), 1)

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, out.String(), "GET /books/{id}")
	assert.Contains(t, out.String(), "http.server.request.total")
	assert.Contains(t, out.String(), "bookcatalog-test")
}

func TestSetup_OTLP(t *testing.T) {
	for _, endpoint := range []string{"http://localhost:4318", "localhost:4318", "https://collector.example:4318"} {
		p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
			Enabled:     true,
			Exporter:    telemetry.ExporterOTLP,
			Endpoint:    endpoint,
			ServiceName: "bookcatalog-test",
		}, &bytes.Buffer{})
		require.NoError(t, err, endpoint)
		assert.NotNil(t, p.Metrics, endpoint)

		// Nothing listens on the collector address, so the final flush may fail.
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		_ = p.Shutdown(ctx)
		cancel()
	}
}

func TestSetup_RejectsBadExporter(t *testing.T) {
	t.Parallel()

	_, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, telemetry.ErrUnsupportedExporter)

	_, err = telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "requires an endpoint")
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "bookcatalog-test")
	require.NoError(t, err)

	m.StorageOperationTotal.Add(context.Background(), 1)
	m.StorageOperationDuration.Record(context.Background(), 0.01)
	m.ServerRequestDuration.Record(context.Background(), 0.02)
}
