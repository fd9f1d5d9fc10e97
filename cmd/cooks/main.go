package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cooksapp/cooks/internal/api"
	"github.com/cooksapp/cooks/internal/config"
	"github.com/cooksapp/cooks/internal/env"
	"github.com/cooksapp/cooks/internal/log"
	"github.com/cooksapp/cooks/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	logger := log.New(nil)
	slog.SetDefault(logger)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(ctx, conf.Database)
	if err != nil {
		logger.Error("failed to set up database", slog.Any("error", err))
		os.Exit(1)
	}

	blobs, err := setup.BlobStore(ctx, conf.BlobStore, logger)
	if err != nil {
		logger.Error("failed to set up blob store", slog.Any("error", err))
		os.Exit(1)
	}

	environment := &env.Env{
		Logger:   logger,
		Database: db,
		Notifier: setup.Notifier(conf, logger),
		Blobs:    blobs,
		Config:   conf,
	}

	if err := api.Start(environment); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
