package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"minute-planner/config"
	"minute-planner/di"
	"minute-planner/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.NewStructured("info", "console")
		bootLog.WithError(err).Error("Failed to load configuration", nil)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("Starting MinutePlanner", map[string]interface{}{
		"version": cfg.App.Version,
		"env":     cfg.App.Environment,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("Failed to initialize container", nil)
		os.Exit(1)
	}

	if cfg.Refresher.Enabled {
		container.TrendingRefresherService.StartPeriodicJob(ctx)
	}

	if err := container.MinutePlannerHttpServer.Start(ctx); err != nil {
		log.WithError(err).Error("Server stopped with error", nil)
		os.Exit(1)
	}
}
