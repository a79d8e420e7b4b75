// Command seed replaces the catalog content of the configured store with the
// built-in demo set.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mavecode/mavecode-api/internal/app/api"
	"github.com/mavecode/mavecode-api/internal/config"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/seed"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("seeding failed", sl.Err(err))
		stop()
		os.Exit(1)
	}
	logger.Info("seed data created")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := api.OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("store is not available")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Error("failed to close store", sl.Err(err))
		}
	}()

	return seed.New(store, logger).Seed(ctx)
}
