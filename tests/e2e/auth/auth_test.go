//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com")
}

func (s *authSuite) TestRegister() {
	s.Run("新規登録でトークンとユーザーが返る", func() {
		t := s.T()
		body := request.RegisterRequest{Name: "Hanako", Email: "Hanako@Example.com", Password: "secret1"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotEmpty(t, res.Token)
		require.NotEmpty(t, res.RefreshToken)
		require.Equal(t, "hanako@example.com", res.User.Email)
		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		httptest.AssertHeaderPresent(t, w, "X-Request-ID")

		// 発行されたトークンでそのまま/meにアクセスできる
		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.Token)
		httptest.AssertSuccessResponse(t, me, http.StatusOK, nil)
	})

	s.Run("登録済みのメールアドレスは422", func() {
		t := s.T()
		body := request.RegisterRequest{Name: "Dup", Email: "TEST@example.com", Password: "secret1"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "email has already been taken")
	})

	s.Run("短いパスワードは400", func() {
		t := s.T()
		body := request.RegisterRequest{Name: "Short", Email: "short@example.com", Password: "abc"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
		httptest.AssertFieldErrors(t, w, "password")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{name: "正常なログイン", email: "test@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK, description: "有効な認証情報でログインできること"},
		{name: "大文字のメールアドレス", email: "Test@Example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK, description: "メールアドレスは大文字小文字を区別しないこと"},
		{name: "存在しないユーザー", email: "nonexistent@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized, description: "存在しないユーザーでログインできないこと"},
		{name: "間違ったパスワード", email: "test@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized, description: "間違ったパスワードでログインできないこと"},
		{name: "空のメールアドレス", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest, description: "空のメールアドレスは拒否されること"},
		{name: "空のパスワード", email: "test@example.com", password: "", expectedStatus: http.StatusBadRequest, description: "空のパスワードは拒否されること"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res resdto.AuthResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.NotEmpty(t, res.Token, "アクセストークンが空")
				require.NotEmpty(t, res.RefreshToken, "リフレッシュトークンが空")

				// last_loginが更新されることを確認
				require.NotNil(t, dbtest.LastLogin(t, s.DB, "test@example.com"), "last_loginが更新されていない")
				return
			}
			httptest.AssertNoCookie(t, w, "access_token")
			httptest.AssertNoCookie(t, w, "refresh_token")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("リフレッシュトークンで新しいペアを取得", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
		var login resdto.AuthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &login)

		r := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: login.RefreshToken}, "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(t, r, http.StatusOK, &res)
		require.NotEmpty(t, res.Token)
	})

	s.Run("クッキーのリフレッシュトークンでも更新できる", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		r := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refreshCookie}, "")
		httptest.AssertSuccessResponse(t, r, http.StatusOK, nil)
	})

	s.Run("アクセストークンでは更新できない", func() {
		t := s.T()
		access := s.jwt.GenerateToken(t, uuid.New(), "test@example.com", "Test User")

		r := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: access}, "")
		httptest.AssertErrorResponse(t, r, http.StatusUnauthorized, "")
	})

	s.Run("存在しないユーザーのトークンは401", func() {
		t := s.T()
		refresh := s.jwt.GenerateRefreshToken(t, uuid.New(), "ghost@example.com", "Ghost")

		r := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: refresh}, "")
		httptest.AssertErrorResponse(t, r, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー情報を返す", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "test@example.com", res.Email)
		require.NotNil(t, res.LastLogin)
	})

	s.Run("期限切れトークンは401", func() {
		t := s.T()
		expired := s.jwt.CreateExpiredToken(t, uuid.New(), "test@example.com", "Test User")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("トークンなしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが消える", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}
