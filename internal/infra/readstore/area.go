package readstore

import (
	"context"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const pendingAreaRequestsSQL = `SELECT ` + converter.AreaRequestColumns + ` FROM area_requests
	WHERE status = 'pending'
	  AND ($1::timestamptz IS NULL OR (created_at, id) > ($1, $2::uuid))
	ORDER BY created_at, id
	LIMIT $3`

type AreaReadStore struct {
	db db.DBTX
}

func NewAreaReadStore(dbtx db.DBTX) *AreaReadStore {
	return &AreaReadStore{db: dbtx}
}

func (s *AreaReadStore) FindPending(ctx context.Context, after *queries.Position, limit int32) ([]*queries.AreaRequestView, error) {
	createdAt, id := positionArgs(after)
	rows, err := s.db.Query(ctx, pendingAreaRequestsSQL, createdAt, id, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending area requests", err)
	}
	reqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*area.ExpansionRequest, error) {
		return converter.ScanAreaRequest(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan area requests", err)
	}

	views := make([]*queries.AreaRequestView, len(reqs))
	for i, r := range reqs {
		views[i] = queries.NewAreaRequestView(r)
	}
	return views, nil
}
