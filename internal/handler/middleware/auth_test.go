//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
	userID     uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService("test-secret", time.Hour, 24*time.Hour)
	s.userID = uuid.New()

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))
	whoami := func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID.String(), "email": identity.Email.Value()})
	}
	s.router.GET("/required", auth.RequireAuth(), whoami)
	s.router.GET("/optional", auth.OptionalAuth(), whoami)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) accessToken() string {
	token, err := s.jwtService.GenerateAccessToken(s.userID, "User@Example.com", "User")
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token sets identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, s.accessToken())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body["user_id"])
		s.Equal("user@example.com", body["email"])
	})

	s.Run("success: access cookie is accepted", func() {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.accessToken()}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/required", nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with refresh token", func() {
		refresh, err := s.jwtService.GenerateRefreshToken(s.userID, "user@example.com", "User")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, refresh)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 with token signed by another key", func() {
		other := jwt.NewService("other-secret", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken(s.userID, "user@example.com", "User")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("success: anonymous without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["anonymous"])
	})

	s.Run("success: invalid token falls back to anonymous", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "garbage")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["anonymous"])
	})

	s.Run("success: valid token sets identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, s.accessToken())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body["user_id"])
	})
}
