package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationName tags ledger sessions in pg_stat_activity.
const ApplicationName = "trr_bank_ledger"

const defaultConnectTimeout = 5 * time.Second

// PostgresOptions configures the ledger's PostgreSQL pool.
type PostgresOptions struct {
	URL      string
	MaxConns int32
	// Zero uses defaultConnectTimeout unless the URL sets connect_timeout.
	ConnectTimeout time.Duration
}

func postgresPoolConfig(opts PostgresOptions) (*pgxpool.Config, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	switch {
	case opts.ConnectTimeout > 0:
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	case cfg.ConnConfig.ConnectTimeout == 0:
		cfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	}
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	}
	return cfg, nil
}

// OpenPostgres opens the ledger pool and pings the server once.
func OpenPostgres(ctx context.Context, opts PostgresOptions, logger *slog.Logger) (*pgxpool.Pool, error) {
	cfg, err := postgresPoolConfig(opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach ledger database %s: %w", cfg.ConnConfig.Host, err)
	}

	logger.Info("Ledger store connected",
		slog.String("driver", "pgsql"),
		slog.String("host", cfg.ConnConfig.Host),
		slog.String("database", cfg.ConnConfig.Database),
		slog.Int("max_conns", int(cfg.MaxConns)))
	return pool, nil
}

// ClosePostgres releases every pooled connection.
func ClosePostgres(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool == nil {
		return
	}
	pool.Close()
	logger.Info("Ledger store closed", slog.String("driver", "pgsql"))
}
