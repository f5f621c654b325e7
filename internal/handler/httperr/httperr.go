package httperr

import (
	"context"
	"net/http"

	"roadside-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:          http.StatusBadRequest,
	errs.KindUnauthorized:        http.StatusForbidden,
	errs.KindNotFound:            http.StatusNotFound,
	errs.KindStateConflict:       http.StatusConflict,
	errs.KindInsufficientBalance: http.StatusUnprocessableEntity,
}

// StatusOf returns the HTTP status for an error kind, 500 when unknown.
func StatusOf(kind errs.Kind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

// Abort renders err through the kind taxonomy. Errors outside the
// taxonomy never leak their message.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	if e, ok := errs.AsError(err); ok {
		abort(c, StatusOf(e.Kind), err, e.Message, e.Code, nil)
		return
	}
	if errs.Is(err, context.DeadlineExceeded) || errs.Is(err, context.Canceled) {
		abort(c, http.StatusServiceUnavailable, err, "Request timed out", "TIMEOUT", nil)
		return
	}
	abort(c, http.StatusInternalServerError, err, "Internal server error", "", nil)
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
