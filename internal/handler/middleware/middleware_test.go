//go:build unit

package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/handler/httperr"
	"roadside-marketplace/internal/handler/middleware"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	actor shared.Actor
	err   error
}

func (s stubValidator) Authenticate(string) (shared.Actor, error) {
	return s.actor, s.err
}

func newEngine(log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(log), middleware.RequestLogger(log), middleware.ErrorHandler(log))
	return engine
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	engine := newEngine(slog.New(slog.NewTextHandler(&buf, nil)))
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("echoes a supplied id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, "req-1", w.Body.String())
		assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "request_id=req-1")
		assert.Contains(t, buf.String(), "status=200")
	})

	t.Run("generates one otherwise", func(t *testing.T) {
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
		assert.NoError(t, err)
	})
}

func TestErrorHandling(t *testing.T) {
	var buf bytes.Buffer
	engine := newEngine(slog.New(slog.NewTextHandler(&buf, nil)))
	engine.GET("/boom", func(*gin.Context) { panic("boom") })
	engine.GET("/private", func(c *gin.Context) { _ = c.Error(errs.New("db down")) })
	engine.GET("/missing", func(c *gin.Context) {
		httperr.Abort(c, errs.WithStack(errs.Define(errs.KindNotFound, "GONE", "gone")))
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	})

	t.Run("private error is logged and hidden", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
		assert.Contains(t, buf.String(), "db down")
	})

	t.Run("client errors are not logged as failures", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, buf.String(), "request failed")
	})
}

func TestTimeout(t *testing.T) {
	engine := newEngine(discard())
	engine.Use(middleware.Timeout(20 * time.Millisecond))
	engine.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	engine.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("unanswered request past the deadline gets 503", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Request timed out","code":"TIMEOUT"}}`, w.Body.String())
	})

	t.Run("answered request is left alone", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	actor := shared.Actor{ID: uuid.New(), Role: user.RolePartner}

	serve := func(v stubValidator, header string, roles ...user.Role) *httptest.ResponseRecorder {
		auth := middleware.NewAuthMiddleware(v)
		engine := newEngine(discard())
		engine.GET("/me", auth.RequireAuth(), auth.RequireRole(roles...), func(c *gin.Context) {
			got, ok := middleware.GetActor(c)
			require.True(t, ok)
			c.String(http.StatusOK, got.ID.String())
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("bearer token resolves the actor", func(t *testing.T) {
		w := serve(stubValidator{actor: actor}, "Bearer tok", user.RolePartner)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, actor.ID.String(), w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := serve(stubValidator{actor: actor}, "", user.RolePartner)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		w := serve(stubValidator{err: errs.New("expired")}, "Bearer tok", user.RolePartner)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		w := serve(stubValidator{actor: actor}, "Bearer tok", user.RoleAdmin)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})
}
