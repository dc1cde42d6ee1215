package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doulovera/proyx-app/internal/app"
	"github.com/doulovera/proyx-app/internal/config"
	"github.com/doulovera/proyx-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(app.StorefrontName, cfg.LogLevel)
	log.Info("starting storefront",
		slog.String("environment", cfg.Environment),
		slog.String("backend", cfg.Backend),
	)

	storefront, err := app.NewStorefront(cfg, log)
	if err != nil {
		log.Error("failed to initialize storefront", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	report, runErr := storefront.RunDemo(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	if err := storefront.Shutdown(shutdownCtx); err != nil {
		log.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	if runErr != nil {
		log.Error("demo failed", slog.String("error", runErr.Error()))
		os.Exit(1)
	}

	log.Info("demo complete",
		slog.String("user", report.User.Email),
		slog.String("event_id", report.Event.ID),
		slog.String("order_id", report.Purchase.Order.ID),
		slog.Int("this_week", report.ThisWeek),
	)
}
