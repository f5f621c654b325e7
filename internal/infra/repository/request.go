package repository

import (
	"context"

	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertRequestSQL = `INSERT INTO service_requests (` + converter.RequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	findRequestSQL          = `SELECT ` + converter.RequestColumns + ` FROM service_requests WHERE id = $1`
	findRequestForUpdateSQL = findRequestSQL + ` FOR UPDATE`
	// The status guard makes the transition a compare-and-set: concurrent
	// writers racing from the same state get zero rows.
	casRequestSQL = `UPDATE service_requests
		SET status = $2, assigned_partner_id = $3, amount = $4, updated_at = $5
		WHERE id = $1 AND status = $6`
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *sr.Request) error {
	if _, err := r.db.Exec(ctx, insertRequestSQL, converter.RequestArgs(req)...); err != nil {
		return wrapErr("failed to create service request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*sr.Request, error) {
	req, err := converter.ScanRequest(r.db.QueryRow(ctx, findRequestSQL, id))
	if err != nil {
		return nil, wrapErr("failed to find service request", err)
	}
	return req, nil
}

func (r *RequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*sr.Request, error) {
	req, err := converter.ScanRequest(r.db.QueryRow(ctx, findRequestForUpdateSQL, id))
	if err != nil {
		return nil, wrapErr("failed to lock service request", err)
	}
	return req, nil
}

func (r *RequestRepository) CompareAndSet(ctx context.Context, req *sr.Request, from sr.Status) (bool, error) {
	tag, err := r.db.Exec(ctx, casRequestSQL,
		req.ID(), req.Status().String(),
		pgconv.UUIDPtrToPgtype(req.AssignedPartnerID()), pgconv.Int8PtrToPgtype(req.Amount()),
		req.UpdatedAt(), from.String())
	if err != nil {
		return false, wrapErr("failed to update service request", err)
	}
	return tag.RowsAffected() == 1, nil
}
