// Package config defines the invoice viewer's settings and loads them from
// configs/*.yaml and APP_* environment variables.
package config

import "time"

// Invoice source kinds.
const (
	InvoiceSourceMock    = "mock"
	InvoiceSourceBilling = "billing"
)

// Config is the server's full configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Invoices  InvoicesConfig  `koanf:"invoices"`
	Billing   ClientConfig    `koanf:"billing"`
	Audit     AuditConfig     `koanf:"audit"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig is the inbound HTTP listener. StaticDir holds the built web
// client; empty disables the SPA fallback.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	StaticDir    string        `koanf:"static_dir"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds Postgres settings. An empty URL selects the in-memory
// tenant store and a log-only audit writer.
type DatabaseConfig struct {
	URL            string        `koanf:"url"`
	MaxConns       int           `koanf:"max_conns"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	// Migrate applies the embedded schema at startup.
	Migrate bool `koanf:"migrate"`
}

// InvoicesConfig selects where invoices come from.
type InvoicesConfig struct {
	Source string `koanf:"source"`
}

// ClientConfig is one outbound HTTP dependency, such as the billing API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is exponential backoff between attempts. MaxAttempts counts
// the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig opens the breaker after MaxFailures consecutive
// failures and lets HalfOpenLimit probes through once Timeout has passed.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound calls; zero RequestsPerSecond means
// unlimited.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// AuditConfig sizes the audit queue and bounds each audit write.
type AuditConfig struct {
	QueueSize    int           `koanf:"queue_size"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// TelemetryConfig selects the OpenTelemetry exporter.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
