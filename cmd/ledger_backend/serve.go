package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/trr_bank_ledger/internal/core/services"
	"github.com/SscSPs/trr_bank_ledger/internal/handlers"
	"github.com/SscSPs/trr_bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "HTTP port (env PORT)")
	serveCmd.Flags().Bool("seed", false, "seed sample data into an empty store (env SEED_SAMPLE_DATA)")
	bindFlag("PORT", serveCmd.Flags().Lookup("port"))
	bindFlag("SEED_SAMPLE_DATA", serveCmd.Flags().Lookup("seed"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := middleware.WithLogger(cmd.Context(), logger)

	if err := migrateStore(cfg, logger); err != nil {
		return err
	}

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("Store ready", slog.String("driver", cfg.DBDriver))

	svcContainer := services.NewServiceContainer(cfg, repos)

	if cfg.SeedSampleData {
		if _, err := svcContainer.Seeder.SeedSampleData(ctx); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, svcContainer); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case sig := <-stop:
		logger.Info("Shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
