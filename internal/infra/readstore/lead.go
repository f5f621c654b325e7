package readstore

import (
	"context"

	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/pgconv"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	leadByIDSQL     = `SELECT ` + converter.LeadColumns + ` FROM lead_purchases WHERE id = $1`
	pendingLeadsSQL = `SELECT ` + converter.LeadColumns + ` FROM lead_purchases
		WHERE status = 'pending'
		  AND ($1::timestamptz IS NULL OR (created_at, id) > ($1, $2::uuid))
		ORDER BY created_at, id
		LIMIT $3`
	partnerLeadsSQL = `SELECT ` + converter.LeadColumns + ` FROM lead_purchases
		WHERE partner_id = $1
		  AND ($2::timestamptz IS NULL OR (created_at, id) > ($2, $3::uuid))
		ORDER BY created_at, id
		LIMIT $4`
)

type LeadReadStore struct {
	db db.DBTX
}

func NewLeadReadStore(dbtx db.DBTX) *LeadReadStore {
	return &LeadReadStore{db: dbtx}
}

func (s *LeadReadStore) FindByID(ctx context.Context, id uuid.UUID) (*lead.Purchase, error) {
	p, err := converter.ScanLead(s.db.QueryRow(ctx, leadByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lead purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead purchase", err)
	}
	return p, nil
}

func (s *LeadReadStore) FindPending(ctx context.Context, after *queries.Position, limit int32) ([]*lead.Purchase, error) {
	createdAt, id := positionArgs(after)
	return s.collect(ctx, "failed to list pending leads", pendingLeadsSQL, createdAt, id, limit)
}

func (s *LeadReadStore) FindByPartner(ctx context.Context, partnerID uuid.UUID, after *queries.Position, limit int32) ([]*lead.Purchase, error) {
	createdAt, id := positionArgs(after)
	return s.collect(ctx, "failed to list partner leads", partnerLeadsSQL, partnerID, createdAt, id, limit)
}

func (s *LeadReadStore) collect(ctx context.Context, msg, sql string, args ...any) ([]*lead.Purchase, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*lead.Purchase, error) {
		return converter.ScanLead(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}
