package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/telemetry"
)

// Tests that install a global TracerProvider do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

func attrsOf(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		m[kv.Key] = kv.Value
	}
	return m
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) })
}

func TestOpenTelemetry_SpanForUnroutedRequest(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.Chain(middleware.RequestID(), middleware.OpenTelemetry(nil))(statusHandler(http.StatusNotFound))
	req := httptest.NewRequest(http.MethodPost, "/books/single", http.NoBody)
	req.Header.Set("X-Request-ID", "req-77")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP POST /books/single", spans[0].Name)

	attrs := attrsOf(spans[0])
	assert.Equal(t, "POST", attrs["http.method"].AsString())
	assert.Equal(t, "/books/single", attrs["url.path"].AsString())
	assert.Equal(t, "req-77", attrs["http.request_id"].AsString())
	assert.Equal(t, int64(http.StatusNotFound), attrs["http.status_code"].AsInt64())
	assert.NotContains(t, attrs, attribute.Key("http.route"))
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	exporter := setupTracer(t)

	middleware.OpenTelemetry(nil)(statusHandler(http.StatusServiceUnavailable)).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "Service Unavailable", spans[0].Status.Description)
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/books/3", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK)).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
	assert.True(t, spans[0].Parent.IsRemote())
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Get("/books/{id}", statusHandler(http.StatusOK).ServeHTTP)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books/42", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /books/{id}", spans[0].Name)
	assert.Equal(t, "/books/{id}", attrsOf(spans[0])["http.route"].AsString())
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.OpenTelemetry(nil)(statusHandler(http.StatusNoContent)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/books/1", http.NoBody))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "bookcatalog-test")
	require.NoError(t, err)

	statuses := map[string]int{"/books/1": http.StatusOK, "/books/2": http.StatusNotFound, "/books/3": http.StatusNotFound, "/books/4": http.StatusInternalServerError}
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Get("/books/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(statuses[req.URL.Path])
	})
	for path := range statuses {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%T", m.Data)
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				assert.Equal(t, "/books/{id}", route.AsString())
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				counts[result.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"success": 1, "client_error": 2, "server_error": 1}, counts)
}
