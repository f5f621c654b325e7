package converter

import (
	"fmt"
	"time"

	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const LeadColumns = `id, partner_id, request_id, credit_cost, status, resolved_at, resolved_by, notes,
	customer_name, customer_phone, customer_location, created_at`

// ScanLead rebuilds the tagged state from the flat row. Customer columns
// are read only for approved rows.
func ScanLead(row pgx.Row) (*lead.Purchase, error) {
	var (
		id, partnerID, requestID uuid.UUID
		creditCost               int64
		status, notes            string
		resolvedAt               pgtype.Timestamptz
		resolvedBy               pgtype.UUID
		name, phone, location    pgtype.Text
		createdAt                time.Time
	)
	if err := row.Scan(&id, &partnerID, &requestID, &creditCost, &status, &resolvedAt, &resolvedBy, &notes,
		&name, &phone, &location, &createdAt); err != nil {
		return nil, err
	}

	var state lead.State
	switch lead.Status(status) {
	case lead.StatusPending:
		state = lead.Pending{}
	case lead.StatusApproved, lead.StatusRejected:
		if !resolvedAt.Valid || !resolvedBy.Valid {
			return nil, fmt.Errorf("lead purchase %s is %s without resolution", id, status)
		}
		res := lead.Resolution{ResolvedAt: resolvedAt.Time, ResolvedBy: uuid.UUID(resolvedBy.Bytes), Notes: notes}
		if lead.Status(status) == lead.StatusRejected {
			state = lead.Rejected{Resolution: res}
			break
		}
		state = lead.Approved{Resolution: res, Customer: lead.CustomerInfo{
			Name:     name.String,
			Phone:    phone.String,
			Location: location.String,
		}}
	default:
		return nil, fmt.Errorf("lead purchase %s has unknown status %q", id, status)
	}

	return lead.ReconstructPurchase(id, partnerID, requestID, creditCost, createdAt, state), nil
}

// LeadResolutionArgs flattens the resolved state: status, resolved_at,
// resolved_by, notes, customer_name, customer_phone, customer_location.
func LeadResolutionArgs(p *lead.Purchase) []any {
	args := []any{p.Status().String(), pgconv.TimePtrToPgtype(nil), pgconv.UUIDPtrToPgtype(nil), ""}
	if res, ok := p.Resolution(); ok {
		args = []any{p.Status().String(), pgconv.TimePtrToPgtype(&res.ResolvedAt), pgconv.UUIDPtrToPgtype(&res.ResolvedBy), res.Notes}
	}
	if info, ok := p.CustomerInfo(); ok {
		return append(args, info.Name, info.Phone, info.Location)
	}
	return append(args, pgtype.Text{}, pgtype.Text{}, pgtype.Text{})
}
