package bootstrap

import (
	"log/slog"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService signs access and refresh tokens with the configured lifetimes.
// Durations are already validated by config.LoadConfig.
func NewJWTService(cfg config.Config) *jwt.Service {
	slog.Debug("JWT service configured",
		"access_ttl", cfg.JWT.AccessTokenDuration,
		"refresh_ttl", cfg.JWT.RefreshTokenDuration)
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
}
