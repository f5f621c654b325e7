//go:build unit

package httperr_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadside-marketplace/internal/handler/httperr"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind errs.Kind
		want int
	}{
		{errs.KindValidation, http.StatusBadRequest},
		{errs.KindUnauthorized, http.StatusForbidden},
		{errs.KindNotFound, http.StatusNotFound},
		{errs.KindStateConflict, http.StatusConflict},
		{errs.KindInsufficientBalance, http.StatusUnprocessableEntity},
		{errs.Kind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.kind))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	balance := errs.Define(errs.KindInsufficientBalance, "INSUFFICIENT_BALANCE", "insufficient credit balance")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
		wantMsg  string
	}{
		{
			name:     "defined error keeps code and message",
			err:      balance,
			wantCode: http.StatusUnprocessableEntity,
			wantBody: "INSUFFICIENT_BALANCE",
			wantMsg:  "insufficient credit balance",
		},
		{
			name:     "wrapping keeps the kind",
			err:      errs.Wrapf(errs.ErrNotFound, "partner %d", 7),
			wantCode: http.StatusNotFound,
			wantBody: "NOT_FOUND",
			wantMsg:  "resource not found",
		},
		{
			name:     "deadline maps to 503",
			err:      errs.Wrap(context.DeadlineExceeded, "ledger append"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: "TIMEOUT",
			wantMsg:  "Request timed out",
		},
		{
			name:     "unknown errors hide their message",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: "",
			wantMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			httperr.Abort(c, tt.err)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.wantCode, w.Code)
			require.Len(t, c.Errors, 1)
			assert.Same(t, tt.err, c.Errors[0].Err)
			assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))

			var body httperr.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestAbortNilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() { httperr.Abort(c, nil) })
}
