package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/configuration"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/logging"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg, err := configuration.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "Error", err)
		return
	}

	logging.Init(cfg.Application.LogLevel)
	slog.Info("Starting data tier", "profile", cfg.Application.Profile)

	var metricsServer *metrics.Server
	if cfg.Application.MetricsPort != "" {
		metricsServer = metrics.NewServer(":" + cfg.Application.MetricsPort)
		if err := metricsServer.Start(); err != nil {
			slog.Error("Failed to start metrics server", "Error", err)
			return
		}
	}

	var run func(context.Context, *configuration.Config, *metrics.Server) error
	switch cfg.Application.Profile {
	case "orchestrator":
		run = runOrchestrator
	case "node":
		run = runNode
	default:
		slog.Error("Unknown profile, expected orchestrator or node",
			"profile", cfg.Application.Profile)
		return
	}

	if err := run(ctx, cfg, metricsServer); err != nil {
		slog.Error("Process terminated with error", "Error", err)
	}

	if metricsServer != nil {
		metricsServer.Stop()
	}
	slog.Info("Shutting down data tier...")
}
