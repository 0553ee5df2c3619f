package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/platform/config"
	"github.com/SscSPs/trr_bank_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/trr_bank_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/trr_bank_ledger/pkg/database"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", flag.Name, err))
	}
}

// migrateStore brings the configured store's schema up to date.
func migrateStore(cfg *config.Config, logger *slog.Logger) error {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return database.MigrateSQLite(cfg.SQLitePath, logger)
	default:
		return database.MigratePostgres(cfg.DatabaseURL, logger)
	}
}

// openStore connects to the configured store and wires its repositories.
// The returned func releases the connection.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return sqlite.NewRepositoryProvider(db), func() { _ = db.Close() }, nil
	default:
		pool, err := database.OpenPostgres(ctx, database.PostgresOptions{URL: cfg.DatabaseURL, MaxConns: cfg.DBMaxConns}, slog.Default())
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePostgres(pool, slog.Default()) }, nil
	}
}
