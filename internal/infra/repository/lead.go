package repository

import (
	"context"

	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	insertLeadSQL = `INSERT INTO lead_purchases (id, partner_id, request_id, credit_cost, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	findLeadForUpdateSQL = `SELECT ` + converter.LeadColumns + ` FROM lead_purchases WHERE id = $1 FOR UPDATE`
	resolveLeadSQL       = `UPDATE lead_purchases
		SET status = $2, resolved_at = $3, resolved_by = $4, notes = $5,
		    customer_name = $6, customer_phone = $7, customer_location = $8
		WHERE id = $1 AND status = 'pending'`
)

type LeadRepository struct {
	db db.DBTX
}

func NewLeadRepository(dbtx db.DBTX) *LeadRepository {
	return &LeadRepository{db: dbtx}
}

func (r *LeadRepository) Create(ctx context.Context, p *lead.Purchase) error {
	_, err := r.db.Exec(ctx, insertLeadSQL, p.ID(), p.PartnerID(), p.RequestID(), p.CreditCost(), p.Status().String(), p.CreatedAt())
	if err != nil {
		return wrapErr("failed to create lead purchase", err)
	}
	return nil
}

func (r *LeadRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lead.Purchase, error) {
	p, err := converter.ScanLead(r.db.QueryRow(ctx, findLeadForUpdateSQL, id))
	if err != nil {
		return nil, wrapErr("failed to lock lead purchase", err)
	}
	return p, nil
}

func (r *LeadRepository) Resolve(ctx context.Context, p *lead.Purchase) (bool, error) {
	args := append([]any{p.ID()}, converter.LeadResolutionArgs(p)...)
	tag, err := r.db.Exec(ctx, resolveLeadSQL, args...)
	if err != nil {
		return false, wrapErr("failed to resolve lead purchase", err)
	}
	return tag.RowsAffected() == 1, nil
}
