package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/invoice-viewer/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("Server.Port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Invoices.Source != config.InvoiceSourceMock {
		t.Errorf("Invoices.Source = %q, want %q", cfg.Invoices.Source, config.InvoiceSourceMock)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty for local", cfg.Database.URL)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Invoices.Source != config.InvoiceSourceBilling {
		t.Errorf("Invoices.Source = %q, want %q", cfg.Invoices.Source, config.InvoiceSourceBilling)
	}
	if cfg.Billing.RateLimit.RequestsPerSecond <= 0 {
		t.Error("Billing.RateLimit.RequestsPerSecond <= 0, want rate limiting enabled for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Billing.Retry.MaxAttempts != 3 {
		t.Errorf("Billing.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Billing.Retry.MaxAttempts)
	}
	if cfg.Billing.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Billing.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Billing.CircuitBreaker.MaxFailures)
	}
	if cfg.Audit.QueueSize != 256 {
		t.Errorf("Audit.QueueSize = %d, want 256 (from base)", cfg.Audit.QueueSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env, value string
		check      func(*config.Config) bool
	}{
		{"APP_SERVER_PORT", "9090", func(c *config.Config) bool { return c.Server.Port == 9090 }},
		{"APP_SERVER_READ_TIMEOUT", "15s", func(c *config.Config) bool { return c.Server.ReadTimeout == 15*time.Second }},
		{"APP_SERVER_STATIC_DIR", "/srv/viewer", func(c *config.Config) bool { return c.Server.StaticDir == "/srv/viewer" }},
		{"APP_BILLING_RETRY_MAX_ATTEMPTS", "7", func(c *config.Config) bool { return c.Billing.Retry.MaxAttempts == 7 }},
		{"APP_DATABASE_URL", "postgres://viewer:pw@db:5432/invoices", func(c *config.Config) bool {
			return c.Database.URL == "postgres://viewer:pw@db:5432/invoices"
		}},
		{"APP_AUDIT_QUEUE_SIZE", "32", func(c *config.Config) bool { return c.Audit.QueueSize == 32 }},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("%s=%s was not applied", tt.env, tt.value)
			}
		})
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../prod", `a\b`, "prod.yaml", "-x"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_UnknownInvoiceSource(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Invoices.Source = "graph"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown invoice source")
	}
}

func TestValidate_BillingCheckedOnlyWhenSelected(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Billing.BaseURL = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil while invoices.source is mock", err)
	}

	cfg.Invoices.Source = config.InvoiceSourceBilling
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for billing source without base_url")
	}
}

func TestValidate_DatabaseURLScheme(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Database.URL = "mysql://localhost/invoices"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for non-postgres database URL")
	}
}

func TestValidate_AuditQueueSize(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Audit.QueueSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for audit.queue_size=0")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         3001,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			MaxConns:       10,
			ConnectTimeout: 5 * time.Second,
		},
		Invoices: config.InvoicesConfig{
			Source: config.InvoiceSourceMock,
		},
		Billing: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Audit: config.AuditConfig{
			QueueSize:    256,
			WriteTimeout: 3 * time.Second,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

func TestNewClientConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewClientConfig("http://localhost:3001")

	if cfg.BaseURL != "http://localhost:3001" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:3001")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.InitialInterval != 100*time.Millisecond {
		t.Errorf("Retry = %+v, want 3 attempts from 100ms", cfg.Retry)
	}
	if cfg.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("CircuitBreaker.MaxFailures = %d, want 5", cfg.CircuitBreaker.MaxFailures)
	}
	if cfg.RateLimit.RequestsPerSecond != 0 {
		t.Errorf("RateLimit.RequestsPerSecond = %v, want 0", cfg.RateLimit.RequestsPerSecond)
	}
}
