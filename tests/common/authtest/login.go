//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// Session is what a successful login hands back: the body tokens and the cookies.
type Session struct {
	AccessToken  string
	RefreshToken string
	Cookies      []*http.Cookie
}

// Login signs in through the API and checks that the body token matches the cookie.
func Login(t *testing.T, router *gin.Engine, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.AuthResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

	access := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, access, "access_token cookie missing")
	require.Equal(t, res.Token, access.Value, "cookie and body tokens differ")

	return Session{AccessToken: res.Token, RefreshToken: res.RefreshToken, Cookies: httptest.ExtractCookies(w)}
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return Login(t, router, email, password).AccessToken
}

// CreateAndLogin inserts a user with dbtest.TestPassword and signs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

// LogoutUser logs out with the session cookies and checks both token cookies are expired.
func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	for _, name := range []string{"access_token", "refresh_token"} {
		c := httptest.ExtractCookie(w, name)
		require.NotNil(t, c, "%s was not cleared", name)
		require.Empty(t, c.Value)
		require.Less(t, c.MaxAge, 0, "%s should expire immediately", name)
	}
}
