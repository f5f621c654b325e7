package readstore

import (
	"context"

	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/pgconv"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	requestByIDSQL = `SELECT ` + converter.RequestColumns + ` FROM service_requests WHERE id = $1`
	// $2/$3 form the keyset position; both NULL means first page.
	openRequestsSQL = `SELECT ` + converter.RequestColumns + ` FROM service_requests
		WHERE status = 'open'
		  AND ($1::text IS NULL OR service_type = $1)
		  AND ($2::timestamptz IS NULL OR (created_at, id) > ($2, $3::uuid))
		ORDER BY created_at, id
		LIMIT $4`
	offersByRequestSQL = `SELECT ` + converter.OfferColumns + ` FROM offers
		WHERE request_id = $1 ORDER BY created_at, id`
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	req, err := converter.ScanRequest(s.db.QueryRow(ctx, requestByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service request", err)
	}
	return queries.NewRequestView(req), nil
}

func (s *RequestReadStore) FindOpen(ctx context.Context, serviceType *string, after *queries.Position, limit int32) ([]*queries.RequestView, error) {
	createdAt, id := positionArgs(after)
	rows, err := s.db.Query(ctx, openRequestsSQL, pgconv.StringPtrToPgtype(serviceType), createdAt, id, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open requests", err)
	}
	reqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*sr.Request, error) {
		return converter.ScanRequest(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan open requests", err)
	}

	views := make([]*queries.RequestView, len(reqs))
	for i, r := range reqs {
		views[i] = queries.NewRequestView(r)
	}
	return views, nil
}

func (s *RequestReadStore) FindOffers(ctx context.Context, requestID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := s.db.Query(ctx, offersByRequestSQL, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	offers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*sr.Offer, error) {
		return converter.ScanOffer(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan offers", err)
	}

	views := make([]*queries.OfferView, len(offers))
	for i, o := range offers {
		views[i] = queries.NewOfferView(o)
	}
	return views, nil
}
