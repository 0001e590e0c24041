//go:build e2e

package user_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type userSuite struct {
	e2e.SharedSuite
	token string
}

func TestUserSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(userSuite))
}

func (s *userSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "member@example.com")
}

func ptr(v string) *string { return &v }

func (s *userSuite) me(t *testing.T) resdto.UserResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, s.token)

	var res resdto.UserResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *userSuite) TestUpdateProfile() {
	s.Run("指定した項目だけ更新される", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/user",
			request.UpdateProfileRequest{Title: ptr("Dr"), PhoneNumber: ptr("+81-90-0000-0000")}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		res := s.me(t)
		require.Equal(t, "Test User", res.Name)
		require.NotNil(t, res.Title)
		require.Equal(t, "Dr", *res.Title)
		require.NotNil(t, res.PhoneNumber)
	})

	s.Run("空文字で項目をクリアできる", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/user",
			request.UpdateProfileRequest{PhoneNumber: ptr("+81-90-0000-0000")}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/user",
			request.UpdateProfileRequest{PhoneNumber: ptr("")}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Nil(t, s.me(t).PhoneNumber)
	})

	s.Run("空の名前は422", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/user",
			request.UpdateProfileRequest{Name: ptr("  ")}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *userSuite) TestChangePassword() {
	s.Run("新しいパスワードでログインできる", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/user/change-password",
			request.ChangePasswordRequest{CurrentPassword: dbtest.TestPassword, NewPassword: "brand-new-pass"}, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "member@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		authtest.LoginUser(t, s.Router, "member@example.com", "brand-new-pass")
	})

	s.Run("現在のパスワード不一致は422", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/user/change-password",
			request.ChangePasswordRequest{CurrentPassword: "wrong-pass", NewPassword: "brand-new-pass"}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "current password is incorrect")
	})
}
