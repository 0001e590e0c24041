//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(accessTTL time.Duration) *jwt.Service {
	return jwt.NewService(h.cfg.Secret, accessTTL, h.cfg.RefreshTokenDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email, name string) string {
	t.Helper()
	token, err := h.service(h.cfg.AccessTokenDuration).GenerateAccessToken(userID, email, name)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, email, name string) string {
	t.Helper()
	token, err := h.service(time.Hour).GenerateRefreshToken(userID, email, name)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email, name string) string {
	t.Helper()
	token, err := h.service(-time.Minute).GenerateAccessToken(userID, email, name)
	require.NoError(t, err)
	return token
}
