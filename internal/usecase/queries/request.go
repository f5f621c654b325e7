package queries

import (
	"context"

	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestFilters struct {
	ServiceType *string
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// FindOpen returns open requests ordered by (created_at, id), strictly
	// after the given position when it is non-nil.
	FindOpen(ctx context.Context, serviceType *string, after *Position, limit int32) ([]*RequestView, error)
	FindOffers(ctx context.Context, requestID uuid.UUID) ([]*OfferView, error)
}

type RequestQueries interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListOffers(ctx context.Context, requestID uuid.UUID) ([]*OfferView, error)
	ListOpenRequests(ctx context.Context, filters RequestFilters, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetRequest(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithStack(sr.ErrRequestNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *requestQueriesImpl) ListOffers(ctx context.Context, requestID uuid.UUID) ([]*OfferView, error) {
	if _, err := q.GetRequest(ctx, requestID); err != nil {
		return nil, err
	}
	return q.store.FindOffers(ctx, requestID)
}

func (q *requestQueriesImpl) ListOpenRequests(ctx context.Context, filters RequestFilters, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	if filters.ServiceType != nil {
		if _, err := sr.NewServiceType(*filters.ServiceType); err != nil {
			return nil, nil, errs.WithStack(err)
		}
	}
	after, err := cursor.position()
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.FindOpen(ctx, filters.ServiceType, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(last *RequestView) string {
		return EncodeAfterCursor(last.CreatedAt, last.ID)
	})
	return rows, next, nil
}
