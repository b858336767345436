package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/galleypress/galley/internal/api"
	"github.com/galleypress/galley/internal/config"
	"github.com/galleypress/galley/internal/presets"
	"github.com/galleypress/galley/internal/sharelink"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the galley HTTP server",
	Long: `Starts the HTTP API the browser editor talks to. Configuration comes
from GALLEY_* environment variables; see the project documentation.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.ShareSecret == config.DefaultShareSecret {
		log.Warn("GALLEY_SHARE_SECRET not set, share links use the built-in development secret")
	}

	store, err := presets.NewFileStore(cfg.PresetsPath)
	if err != nil {
		return fmt.Errorf("open preset store: %w", err)
	}

	srv := api.NewServer(store, sharelink.NewEncoder(cfg.ShareSecret), log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting galley", "port", cfg.Port, "version", version, "presets", store.Path())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
