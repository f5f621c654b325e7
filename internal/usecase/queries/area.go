package queries

import (
	"context"

	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"
)

type AreaReadStore interface {
	FindPending(ctx context.Context, after *Position, limit int32) ([]*AreaRequestView, error)
}

type AreaQueries interface {
	ListPendingAreaRequests(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*AreaRequestView, *Cursor, error)
}

type areaQueriesImpl struct {
	store AreaReadStore
}

func NewAreaQueries(store AreaReadStore) AreaQueries {
	return &areaQueriesImpl{store: store}
}

func (q *areaQueriesImpl) ListPendingAreaRequests(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*AreaRequestView, *Cursor, error) {
	if !actor.IsAdmin() {
		return nil, nil, errs.WithStack(errs.ErrUnauthorized)
	}
	after, err := cursor.position()
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.FindPending(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(last *AreaRequestView) string {
		return EncodeAfterCursor(last.CreatedAt, last.ID)
	})
	return rows, next, nil
}
