//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/migrations"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
	redisPort  = "6379/tcp"
)

// endpoint is a host:port pair published by a container.
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string { return e.Host + ":" + e.Port.Port() }

// sharedContainers are started once per test process and reused by every suite.
var sharedContainers struct {
	once     sync.Once
	postgres endpoint
	redis    endpoint
	err      error
}

// PostgreSQLをRAM上で動かし、耐久性よりも速度を優先する
var fastPostgresFlags = []string{
	"postgres",
	"-c", "fsync=off",
	"-c", "full_page_writes=off",
	"-c", "synchronous_commit=off",
	"-c", "shared_buffers=256MB",
	"-c", "max_connections=200",
	"-c", "log_statement=none",
}

// ------------------------------------------------------------
// コンテナ起動
// ------------------------------------------------------------
func startContainers(t *testing.T) (endpoint, endpoint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sharedContainers.once.Do(func() {
		pg, err := runContainer(testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{pgPort},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd:   fastPostgresFlags,
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return adminDSN(endpoint{Host: host, Port: port})
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}, pgPort)
		if err != nil {
			sharedContainers.err = fmt.Errorf("postgres: %w", err)
			return
		}

		rd, err := runContainer(testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{redisPort},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}, redisPort)
		if err != nil {
			sharedContainers.err = fmt.Errorf("redis: %w", err)
			return
		}

		sharedContainers.postgres, sharedContainers.redis = pg, rd
	})
	require.NoError(t, sharedContainers.err, "コンテナの起動に失敗")

	return sharedContainers.postgres, sharedContainers.redis
}

// runContainer starts req and returns where port is published. Containers are
// reaped by ryuk when the test process exits.
func runContainer(req testcontainers.ContainerRequest, port string) (endpoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

func adminDSN(pg endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())
}

// ------------------------------------------------------------
// データベース準備: スイートごとに専用DBを作成してマイグレーション
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, pg endpoint) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	require.NoError(t, execAdmin(pg, "CREATE DATABASE "+dbName), "テスト用データベースの作成に失敗")
	t.Cleanup(func() {
		if err := execAdmin(pg, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 20,
	}

	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	applied, err := db.Migrate(ctx, pool, migrations.FS)
	require.NoError(t, err, "データベースマイグレーションに失敗")
	slog.Debug("マイグレーション実行完了", "database", dbName, "applied", applied)

	return pool, dbConfig
}

// execAdmin runs stmt against the maintenance database, retrying while the
// server is still settling after startup.
func execAdmin(pg endpoint, stmt string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	if err != nil {
		return err
	}
	defer admin.Close()

	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second))
		}
		if _, err = admin.Exec(ctx, stmt); err == nil {
			return nil
		}
		slog.Warn("管理SQLを再試行中", "attempt", attempt+1, "error", err.Error())
	}
	return err
}

// ------------------------------------------------------------
// アプリケーション構築: 本番と同じfxモジュールをテスト用設定で起動
// ------------------------------------------------------------
func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, redis.UniversalClient) {
	t.Helper()

	var (
		router *gin.Engine
		client redis.UniversalClient
	)
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		bootstrap.RedisModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &client),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, client
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  redis.UniversalClient
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	pg, rd := startContainers(t)
	pool, dbConfig := prepareDatabase(t, pg)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.Addr = rd.Addr()

	s.DB = pool
	s.Config = cfg
	s.Router, s.Redis = buildApp(t, pool, cfg)
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
	require.NotNil(t, s.Redis, "Redisクライアントのセットアップに失敗")

	slog.Info("E2E環境の準備が完了しました", "postgres", pg.Addr(), "redis", rd.Addr(), "database", dbConfig.DBName)
}

// SetupSubTest gives every s.Run a clean database and an empty room cache.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "Failed to flush redis")
}
