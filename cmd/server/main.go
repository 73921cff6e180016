// Package main is the entry point for the invoice viewer server. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/invoice-viewer/internal/adapters/http"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/memory"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/postgres"
	"github.com/jsamuelsen11/invoice-viewer/internal/app"
	"github.com/jsamuelsen11/invoice-viewer/internal/app/auditlog"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/config"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/health"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/logging"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/telemetry"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	auditDrainTimeout     = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	var pool *postgres.Pool
	if cfg.Database.URL != "" {
		pool = do.MustInvoke[*postgres.Pool](injector)
		registry.Register(pool)
	}
	if cfg.Invoices.Source == config.InvoiceSourceBilling {
		registry.Register(do.MustInvoke[*acl.BillingClient](injector))
	}
	recorder := do.MustInvoke[*auditlog.Recorder](injector)

	logger.Info("invoice viewer configured",
		slog.String("profile", profile),
		slog.String("invoice_source", cfg.Invoices.Source),
		slog.Bool("database", pool != nil),
	)

	if err := server.Listen(); err != nil {
		shutdownStores(recorder, pool, logger)
		return err
	}
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		shutdownStores(recorder, pool, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Serve to return.
	<-serverErr

	// Flush pending audit entries before the pool goes away.
	shutdownStores(recorder, pool, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// shutdownStores drains the audit recorder and then closes the pool. pool may
// be nil.
func shutdownStores(recorder *auditlog.Recorder, pool *postgres.Pool, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), auditDrainTimeout)
	defer cancel()

	if err := recorder.Close(ctx); err != nil {
		logger.Error("audit drain error", slog.Any("error", err))
	}
	if pool != nil {
		pool.Close()
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Database.URL != "" {
		do.Provide(injector, func(_ do.Injector) (*postgres.Pool, error) {
			pool, err := postgres.Open(ctx, cfg.Database, logger)
			if err != nil {
				return nil, err
			}
			if cfg.Database.Migrate {
				if err := postgres.EnsureSchema(ctx, pool); err != nil {
					pool.Close()
					return nil, err
				}
			}
			return pool, nil
		})

		do.Provide(injector, func(i do.Injector) (ports.TenantStore, error) {
			return postgres.NewTenantStore(do.MustInvoke[*postgres.Pool](i)), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.AuditWriter, error) {
			return postgres.NewAuditWriter(do.MustInvoke[*postgres.Pool](i)), nil
		})
	} else {
		logger.Warn("database.url is empty, using sample tenants and log-only audit")

		do.Provide(injector, func(_ do.Injector) (ports.TenantStore, error) {
			return memory.NewTenantStore(nil), nil
		})

		do.Provide(injector, func(_ do.Injector) (ports.AuditWriter, error) {
			return memory.NewLogAuditWriter(logger), nil
		})
	}

	switch cfg.Invoices.Source {
	case config.InvoiceSourceBilling:
		do.Provide(injector, func(i do.Injector) (*acl.BillingClient, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.Billing, acl.BillingServiceName, metrics, logger)
			return acl.NewBillingClient(client, logger), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.InvoiceSource, error) {
			return do.MustInvoke[*acl.BillingClient](i), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.DocumentSource, error) {
			return do.MustInvoke[*acl.BillingClient](i), nil
		})
	default:
		do.Provide(injector, func(_ do.Injector) (ports.InvoiceSource, error) {
			return memory.NewInvoiceSource(nil), nil
		})

		do.Provide(injector, func(_ do.Injector) (ports.DocumentSource, error) {
			return memory.NewDocumentSource(), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (*auditlog.Recorder, error) {
		writer := do.MustInvoke[ports.AuditWriter](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return auditlog.New(writer, auditlog.Options{
			QueueSize:    cfg.Audit.QueueSize,
			WriteTimeout: cfg.Audit.WriteTimeout,
			Metrics:      metrics,
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.InvoiceService, error) {
		return app.NewInvoiceService(app.InvoiceServiceDeps{
			Tenants:   do.MustInvoke[ports.TenantStore](i),
			Invoices:  do.MustInvoke[ports.InvoiceSource](i),
			Documents: do.MustInvoke[ports.DocumentSource](i),
			Recorder:  do.MustInvoke[*auditlog.Recorder](i),
			Metrics:   do.MustInvoke[*telemetry.Metrics](i),
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.InvoiceHandler, error) {
		svc := do.MustInvoke[ports.InvoiceService](i)
		return handlers.NewInvoiceHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		invoiceH := do.MustInvoke[*handlers.InvoiceHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var spa nethttp.Handler
		if cfg.Server.StaticDir != "" {
			spa = adapthttp.NewSPAHandler(cfg.Server.StaticDir)
		}

		return adapthttp.NewRouter(invoiceH, healthH, spa,
			middleware.Recovery(logger),
			middleware.RequestIDs(),
			middleware.Telemetry(metrics),
			middleware.AccessLog(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
