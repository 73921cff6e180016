package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/invoice-viewer/internal/platform/config"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

//go:embed schema.sql
var schema string

// Compile-time interface check.
var _ ports.HealthChecker = (*Pool)(nil)

// Querier is the subset of *pgxpool.Pool used by the stores. Tests substitute
// their own implementation.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Pool owns a pgx connection pool for the lifetime of the process.
type Pool struct {
	*pgxpool.Pool
}

// Open parses cfg, creates the pool and verifies connectivity with a ping.
// The caller must Close the returned pool on shutdown.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = int32(min(cfg.MaxConns, 1<<16)) //nolint:gosec // bounded above
	}
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if logger != nil {
		logger.InfoContext(ctx, "database connected",
			slog.String("host", pcfg.ConnConfig.Host),
			slog.String("database", pcfg.ConnConfig.Database),
			slog.Int("max_conns", int(pcfg.MaxConns)),
		)
	}

	return &Pool{Pool: pool}, nil
}

// Name implements ports.HealthChecker.
func (p *Pool) Name() string {
	return "postgres"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (p *Pool) HealthCheck(ctx context.Context) error {
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

// EnsureSchema creates the tenants and audit_logs tables if they are missing.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}
