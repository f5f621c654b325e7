package api

import (
	"strconv"

	"roadside-marketplace/internal/handler/httperr"
	"roadside-marketplace/internal/handler/middleware"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/ptr"
	"roadside-marketplace/internal/usecase/queries"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingActor = errs.New("authenticated actor missing from context")

// Each helper aborts the request itself and reports false on failure.

func actor(c *gin.Context) (shared.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, errMissingActor)
	}
	return a, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Abort(c, errs.Wrapf(errs.ErrInvalidInput, "%s: %v", name, err))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Abort(c, errs.Wrap(errs.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

// pageParams reads the `after` cursor and `limit` query parameters.
func pageParams(c *gin.Context) (*queries.Cursor, int, bool) {
	var limit *int
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.Abort(c, errs.Wrapf(errs.ErrInvalidInput, "limit: %v", err))
			return nil, 0, false
		}
		limit = &n
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, queries.ValidateLimit(ptr.Or(limit, queries.DefaultListLimit)), true
}

func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

func nextAfter(next *queries.Cursor) string {
	if next == nil {
		return ""
	}
	return next.After
}
