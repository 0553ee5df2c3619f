package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/trr_bank_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title TRR Bank Ledger API
// @version 1.0
// @description Customers, accounts, deposits, withdrawals, transfers and the audit trail of a small bank.

// @host localhost:8080
// @BasePath /api/v1

var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledger_backend",
	Short: "Bank ledger server",
	Long: `ledger_backend serves the bank ledger HTTP API and manages its store.
Configuration comes from the environment (and a .env file); flags override it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db-driver", "", "store driver: postgres or sqlite (env DB_DRIVER)")
	flags.String("pgsql-url", "", "PostgreSQL connection URL (env PGSQL_URL)")
	flags.String("sqlite-path", "", "SQLite database file (env SQLITE_PATH)")
	flags.String("log-level", "", "debug, info, warn or error (env LOG_LEVEL)")

	bindFlag("DB_DRIVER", flags.Lookup("db-driver"))
	bindFlag("PGSQL_URL", flags.Lookup("pgsql-url"))
	bindFlag("SQLITE_PATH", flags.Lookup("sqlite-path"))
	bindFlag("LOG_LEVEL", flags.Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
