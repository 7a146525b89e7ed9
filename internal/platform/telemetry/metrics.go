package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrOperation  = attribute.Key("operation")
	AttrDBSystem   = attribute.Key("db.system")
	AttrResult     = attribute.Key("result")
)

// Metrics are the instruments the catalog records into. A nil *Metrics means
// telemetry is off and callers skip recording.
type Metrics struct {
	ServerRequestDuration    metric.Float64Histogram
	ServerRequestTotal       metric.Int64Counter
	StorageOperationDuration metric.Float64Histogram
	StorageOperationTotal    metric.Int64Counter
}

// NewMetrics registers the catalog instruments on mp under a meter named
// scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var (
		m   Metrics
		err error
	)

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of catalog API requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("http.server.request.duration: %w", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Catalog API requests served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("http.server.request.total: %w", err)
	}
	if m.StorageOperationDuration, err = meter.Float64Histogram("storage.operation.duration",
		metric.WithDescription("Duration of book storage operations"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("storage.operation.duration: %w", err)
	}
	if m.StorageOperationTotal, err = meter.Int64Counter("storage.operation.total",
		metric.WithDescription("Book storage operations attempted"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, fmt.Errorf("storage.operation.total: %w", err)
	}
	return &m, nil
}
