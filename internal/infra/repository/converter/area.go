package converter

import (
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const AreaRequestColumns = `id, partner_id, areas, status, notes, resolved_at, resolved_by, created_at`

func ScanAreaRequest(row pgx.Row) (*area.ExpansionRequest, error) {
	var (
		id, partnerID uuid.UUID
		areas         []string
		status, notes string
		resolvedAt    pgtype.Timestamptz
		resolvedBy    pgtype.UUID
		createdAt     time.Time
	)
	if err := row.Scan(&id, &partnerID, &areas, &status, &notes, &resolvedAt, &resolvedBy, &createdAt); err != nil {
		return nil, err
	}
	return area.ReconstructExpansionRequest(id, partnerID, areas, area.Status(status), notes,
		pgconv.TimePtrFromPgtype(resolvedAt), pgconv.UUIDPtrFromPgtype(resolvedBy), createdAt), nil
}
