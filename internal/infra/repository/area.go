package repository

import (
	"context"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertAreaRequestSQL = `INSERT INTO area_requests (id, partner_id, areas, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	findAreaRequestForUpdateSQL = `SELECT ` + converter.AreaRequestColumns + ` FROM area_requests WHERE id = $1 FOR UPDATE`
	resolveAreaRequestSQL       = `UPDATE area_requests SET status = $2, notes = $3, resolved_at = $4, resolved_by = $5
		WHERE id = $1 AND status = 'pending'`
)

type AreaRequestRepository struct {
	db db.DBTX
}

func NewAreaRequestRepository(dbtx db.DBTX) *AreaRequestRepository {
	return &AreaRequestRepository{db: dbtx}
}

func (r *AreaRequestRepository) Create(ctx context.Context, req *area.ExpansionRequest) error {
	_, err := r.db.Exec(ctx, insertAreaRequestSQL, req.ID(), req.PartnerID(), req.Areas(), req.Status().String(), req.CreatedAt())
	if err != nil {
		return wrapErr("failed to create area request", err)
	}
	return nil
}

func (r *AreaRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*area.ExpansionRequest, error) {
	req, err := converter.ScanAreaRequest(r.db.QueryRow(ctx, findAreaRequestForUpdateSQL, id))
	if err != nil {
		return nil, wrapErr("failed to lock area request", err)
	}
	return req, nil
}

func (r *AreaRequestRepository) Resolve(ctx context.Context, req *area.ExpansionRequest) (bool, error) {
	tag, err := r.db.Exec(ctx, resolveAreaRequestSQL, req.ID(), req.Status().String(), req.Notes(),
		pgconv.TimePtrToPgtype(req.ResolvedAt()), pgconv.UUIDPtrToPgtype(req.ResolvedBy()))
	if err != nil {
		return false, wrapErr("failed to resolve area request", err)
	}
	return tag.RowsAffected() == 1, nil
}
