package config

import "time"

const (
	defaultServerPort = 3001

	defaultDatabaseMaxConns = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultClientTimeout         = 30 * time.Second
	defaultRetryInitialInterval  = 100 * time.Millisecond
	defaultRetryMaxInterval      = 10 * time.Second
	defaultCircuitBreakerTimeout = 30 * time.Second

	defaultAuditQueueSize = 256
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
		"server.static_dir":    "public",

		"log.level":  "info",
		"log.format": "json",

		"database.url":             "",
		"database.max_conns":       defaultDatabaseMaxConns,
		"database.connect_timeout": "5s",
		"database.migrate":         false,

		"invoices.source": InvoiceSourceMock,

		"billing.base_url":                        "http://localhost:8081",
		"billing.timeout":                         defaultClientTimeout.String(),
		"billing.retry.max_attempts":              defaultRetryMaxAttempts,
		"billing.retry.initial_interval":          defaultRetryInitialInterval.String(),
		"billing.retry.max_interval":              defaultRetryMaxInterval.String(),
		"billing.retry.multiplier":                defaultRetryMultiplier,
		"billing.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"billing.circuit_breaker.timeout":         defaultCircuitBreakerTimeout.String(),
		"billing.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"billing.rate_limit.requests_per_second":  0,
		"billing.rate_limit.burst_size":           0,

		"audit.queue_size":    defaultAuditQueueSize,
		"audit.write_timeout": "3s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "invoice-viewer",
	}
}

// NewClientConfig returns outbound client settings for baseURL with the
// default timeout, retry and circuit breaker policy. It serves callers that
// do not load the layered configuration, such as the invoicectl CLI.
func NewClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL: baseURL,
		Timeout: defaultClientTimeout,
		Retry: RetryConfig{
			MaxAttempts:     defaultRetryMaxAttempts,
			InitialInterval: defaultRetryInitialInterval,
			MaxInterval:     defaultRetryMaxInterval,
			Multiplier:      defaultRetryMultiplier,
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:   defaultCircuitBreakerMaxFailures,
			Timeout:       defaultCircuitBreakerTimeout,
			HalfOpenLimit: defaultCircuitBreakerHalfOpen,
		},
	}
}
