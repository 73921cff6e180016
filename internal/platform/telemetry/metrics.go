package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrTenantScope = attribute.Key("tenant.scope")
	AttrAuditAction = attribute.Key("audit.action")
)

// Metrics are the instruments recorded by the HTTP layers, the audit
// recorder and the invoice service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// AuditWriteFailures counts audit entries that were dropped or could not
	// be stored.
	AuditWriteFailures metric.Int64Counter
	// InvoicesReturned is the size of each invoice list response.
	InvoicesReturned metric.Int64Histogram
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	var errs []error
	check := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
	}

	var err error
	m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of inbound HTTP requests"), metric.WithUnit("s"))
	check("http.server.request.duration", err)

	m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Inbound HTTP requests"), metric.WithUnit("{request}"))
	check("http.server.request.total", err)

	m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of outbound HTTP requests"), metric.WithUnit("s"))
	check("http.client.request.duration", err)

	m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Outbound HTTP requests"), metric.WithUnit("{request}"))
	check("http.client.request.total", err)

	m.AuditWriteFailures, err = meter.Int64Counter("audit.write.failures",
		metric.WithDescription("Audit entries that were dropped or failed to persist"), metric.WithUnit("{entry}"))
	check("audit.write.failures", err)

	m.InvoicesReturned, err = meter.Int64Histogram("invoices.returned",
		metric.WithDescription("Invoices returned per list request"), metric.WithUnit("{invoice}"))
	check("invoices.returned", err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}
