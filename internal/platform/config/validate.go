package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// problems collects every failed rule so one startup error lists them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be 1-65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")

	p.require(slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level),
		"log.level must be debug, info, warn or error, got %q", c.Log.Level)
	p.require(c.Log.Format == "json" || c.Log.Format == "text",
		"log.format must be json or text, got %q", c.Log.Format)

	if d := c.Database; d.URL != "" {
		u, err := url.Parse(d.URL)
		p.require(err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql"),
			"database.url must be a postgres:// URL")
		p.require(d.MaxConns >= 1, "database.max_conns must be >= 1, got %d", d.MaxConns)
		p.require(d.ConnectTimeout > 0, "database.connect_timeout must be positive")
	}

	switch c.Invoices.Source {
	case InvoiceSourceMock:
	case InvoiceSourceBilling:
		// The billing client only matters when it serves invoices.
		p = append(p, c.Billing.Validate("billing"))
	default:
		p.require(false, "invoices.source must be %s or %s, got %q",
			InvoiceSourceMock, InvoiceSourceBilling, c.Invoices.Source)
	}

	p.require(c.Audit.QueueSize >= 1, "audit.queue_size must be >= 1, got %d", c.Audit.QueueSize)
	p.require(c.Audit.WriteTimeout > 0, "audit.write_timeout must be positive")

	if t := c.Telemetry; t.Enabled {
		p.require(t.Exporter == "stdout" || t.Exporter == "otlp",
			"telemetry.exporter must be stdout or otlp, got %q", t.Exporter)
		p.require(t.Exporter != "otlp" || t.Endpoint != "",
			"telemetry.endpoint is required for the otlp exporter")
		p.require(t.ServiceName != "", "telemetry.service_name is required when telemetry is enabled")
	}

	return errors.Join(p...)
}

// Validate checks a downstream client section; prefix names it in messages.
func (cl *ClientConfig) Validate(prefix string) error {
	var p problems

	p.require(cl.BaseURL != "", "%s.base_url is required", prefix)
	p.require(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.require(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0,
		"%s.rate_limit.requests_per_second must be >= 0, got %g", prefix, rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"%s.rate_limit.burst_size must be >= 1 when rate limiting is on", prefix)

	return errors.Join(p...)
}
