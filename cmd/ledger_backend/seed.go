package main

import (
	"log/slog"

	"github.com/SscSPs/trr_bank_ledger/internal/core/services"
	"github.com/SscSPs/trr_bank_ledger/internal/middleware"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample customers and accounts into an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := migrateStore(cfg, logger); err != nil {
			return err
		}

		ctx := middleware.WithLogger(cmd.Context(), logger)
		repos, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		seeded, err := services.NewServiceContainer(cfg, repos).Seeder.SeedSampleData(ctx)
		if err != nil {
			return err
		}
		logger.Info("Seed finished", slog.Bool("seeded", seeded))
		return nil
	},
}
