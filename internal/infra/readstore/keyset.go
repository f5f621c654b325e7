package readstore

import (
	"roadside-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

func positionArgs(after *queries.Position) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgtype.Timestamptz{Time: after.CreatedAt, Valid: true}, pgtype.UUID{Bytes: after.ID, Valid: true}
}
