package middleware

import (
	"context"
	"time"

	"roadside-marketplace/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// Timeout bounds every request with a deadline. Use cases observe it
// through the request context; a request that runs past it without
// writing a response gets 503.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			httperr.Abort(c, ctx.Err())
		}
	}
}
