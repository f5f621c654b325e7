package repository

import (
	"context"
	"time"

	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertOfferSQL = `INSERT INTO offers (` + converter.OfferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	findOfferSQL           = `SELECT ` + converter.OfferColumns + ` FROM offers WHERE id = $1`
	listOffersByRequestSQL = `SELECT ` + converter.OfferColumns + ` FROM offers
		WHERE request_id = $1 ORDER BY created_at, id`
	casOfferSQL = `UPDATE offers SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`
	// keep may be the nil UUID, which matches no row.
	rejectPendingOffersSQL = `UPDATE offers SET status = 'rejected', updated_at = $3
		WHERE request_id = $1 AND status = 'sent' AND id <> $2`
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) Create(ctx context.Context, offer *sr.Offer) error {
	if _, err := r.db.Exec(ctx, insertOfferSQL, converter.OfferArgs(offer)...); err != nil {
		return wrapErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*sr.Offer, error) {
	o, err := converter.ScanOffer(r.db.QueryRow(ctx, findOfferSQL, id))
	if err != nil {
		return nil, wrapErr("failed to find offer", err)
	}
	return o, nil
}

func (r *OfferRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*sr.Offer, error) {
	rows, err := r.db.Query(ctx, listOffersByRequestSQL, requestID)
	if err != nil {
		return nil, wrapErr("failed to list offers", err)
	}
	offers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*sr.Offer, error) {
		return converter.ScanOffer(row)
	})
	if err != nil {
		return nil, wrapErr("failed to scan offers", err)
	}
	return offers, nil
}

func (r *OfferRepository) CompareAndSet(ctx context.Context, offer *sr.Offer, from sr.OfferStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, casOfferSQL, offer.ID(), offer.Status().String(), offer.UpdatedAt(), from.String())
	if err != nil {
		return false, wrapErr("failed to update offer", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OfferRepository) RejectPending(ctx context.Context, requestID uuid.UUID, keep uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, rejectPendingOffersSQL, requestID, keep, now)
	if err != nil {
		return 0, wrapErr("failed to reject pending offers", err)
	}
	return tag.RowsAffected(), nil
}
