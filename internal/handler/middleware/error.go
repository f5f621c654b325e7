package middleware

import (
	"log/slog"
	"net/http"

	"roadside-marketplace/internal/handler/httperr"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server-side failures with their stack and renders the
// last public error when the handler has not written a response itself.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			log.ErrorContext(c.Request.Context(), "request failed",
				"request_id", GetRequestID(c),
				"error", e.Err.Error(),
				"stack", errs.ExtractStackLines(e.Err, 5),
			)
		}

		if c.Writer.Written() {
			return
		}

		public := c.Errors.ByType(gin.ErrorTypePublic)
		for i := len(public) - 1; i >= 0; i-- {
			if resp, ok := public[i].Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.ErrorContext(c.Request.Context(), "recovered from panic", "panic", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
