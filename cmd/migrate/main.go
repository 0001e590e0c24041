package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/migrations"
)

const migrateTimeout = 2 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	middleware.NewLogger(cfg.Log)

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	applied, err := db.Migrate(ctx, pool, migrations.FS)
	if err != nil {
		return err
	}

	slog.Info("マイグレーションが完了しました", "applied", applied)
	return nil
}
