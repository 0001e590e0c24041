package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const migrateTimeout = time.Minute

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool and, with DB_AUTO_MIGRATE, brings the schema up to date before any
// handler can touch the bookings table.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		defer cancel()

		applied, err := db.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			cleanup()
			return nil, err
		}
		slog.Info("マイグレーションを適用しました", "applied", applied)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			slog.Info("DB接続プールを閉じます",
				"acquired", stat.AcquiredConns(),
				"total", stat.TotalConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
