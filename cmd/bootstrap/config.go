package bootstrap

import (
	"log/slog"

	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary records the settings that change booking behaviour. Secrets stay out of the log.
func logConfigSummary(cfg config.Config) {
	slog.Info("設定を読み込みました",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"auto_migrate", cfg.DB.AutoMigrate,
		"booking_timezone", cfg.Booking.TimeZone,
		"room_cache", cfg.Redis.Addr != "",
	)
}
