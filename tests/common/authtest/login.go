//go:build unit || e2e

// Package authtest obtains access tokens for e2e requests, either through
// the real login endpoint or by signing them directly.
package authtest

import (
	"net/http"
	"testing"

	"roadside-marketplace/internal/handler/dto/request"
	"roadside-marketplace/internal/pkg/cookie"
	"roadside-marketplace/tests/common/dbtest"
	"roadside-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// LoginUser logs in over HTTP and returns the token from the access cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.Serve(t, router, http.MethodPost, loginPath, request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "login set no %s cookie", cookie.AccessTokenCookieName)
	require.NotEmpty(t, c.Value)
	return c.Value
}

// CreateAndLogin inserts a user with dbtest.TestPassword and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.Serve(t, router, http.MethodPost, logoutPath, nil, httptest.WithCookies(cookies...))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
