package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/finchat/internal/config"
	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/JonMunkholm/finchat/internal/logging"
	"github.com/JonMunkholm/finchat/internal/metrics"
	"github.com/JonMunkholm/finchat/internal/source"
	"github.com/JonMunkholm/finchat/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"dataset_path", cfg.Dataset.Path,
		"dataset_database", cfg.Dataset.UsesDatabase(),
		"rate_limit_enabled", cfg.Rate.Enabled,
		"metrics_enabled", cfg.Metrics.Enabled,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	// Load the dataset once; the server never starts without it
	ds, err := source.Load(context.Background(), cfg.Dataset)
	if err != nil {
		attrs := []any{"error", err, "source", cfg.Dataset.Path}
		if core.IsUserFacing(err) {
			attrs = append(attrs, "hint", core.FormatUserError(err))
		}
		slog.Error("failed to load dataset", attrs...)
		os.Exit(1)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		m.SetDataset(ds)
	}

	var observer core.AnswerObserver
	if m != nil {
		observer = m
	}
	server := web.NewServer(cfg, core.NewResolver(ds, observer), m)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
