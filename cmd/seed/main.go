package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/internal/infra/cache"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const seedTimeout = time.Minute

func main() {
	path := flag.String("file", "seeds/rooms.yaml", "room catalog YAML")
	flag.Parse()

	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.RedisModule,
		fx.Provide(
			sqlc.New,
			uow.NewPostgresUoW,
		),
		fx.Invoke(func(lc fx.Lifecycle, u shared.UnitOfWork, client redis.UniversalClient) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return seedRooms(ctx, *path, u, client)
				},
			})
		}),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("シードの投入に失敗しました", "error", err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Warn("シード用アプリケーションの停止に失敗しました", "error", err)
	}
}

func seedRooms(ctx context.Context, path string, u shared.UnitOfWork, client redis.UniversalClient) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Parsed up front so a bad file never touches the database
	rooms, err := LoadRooms(raw)
	if err != nil {
		return err
	}

	var ids []uuid.UUID
	err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids = ids[:0]
		for _, rm := range rooms {
			stored, err := tx.Rooms().Upsert(ctx, tx.DB(), rm)
			if err != nil {
				return err
			}
			ids = append(ids, stored.ID())
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Upserts may change rooms that are already cached
	if client != nil {
		if err := cache.InvalidateRooms(ctx, client, ids...); err != nil {
			slog.Warn("ルームキャッシュの削除に失敗しました", "error", err)
		}
	}

	slog.Info("ルームのシードが完了しました", "rooms", len(rooms))
	return nil
}
