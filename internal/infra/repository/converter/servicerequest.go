package converter

import (
	"time"

	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const RequestColumns = `id, customer_id, service_type, from_location, to_location, status,
	assigned_partner_id, amount, created_at, updated_at`

const OfferColumns = `id, request_id, partner_id, price, status, created_at, updated_at`

func ScanRequest(row pgx.Row) (*sr.Request, error) {
	var (
		id, customerID       uuid.UUID
		serviceType, status  string
		from                 string
		to                   pgtype.Text
		assigned             pgtype.UUID
		amount               pgtype.Int8
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &customerID, &serviceType, &from, &to, &status, &assigned, &amount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	st, err := sr.NewServiceType(serviceType)
	if err != nil {
		return nil, errs.Wrapf(err, "stored request %s", id)
	}
	fromLoc, err := sr.NewLocation(from)
	if err != nil {
		return nil, errs.Wrapf(err, "stored request %s", id)
	}
	var toLoc *sr.Location
	if s := pgconv.StringPtrFromPgtype(to); s != nil {
		l, err := sr.NewLocation(*s)
		if err != nil {
			return nil, errs.Wrapf(err, "stored request %s", id)
		}
		toLoc = &l
	}

	return sr.ReconstructRequest(id, customerID, st, fromLoc, toLoc, sr.Status(status),
		pgconv.UUIDPtrFromPgtype(assigned), pgconv.Int8PtrFromPgtype(amount), createdAt, updatedAt), nil
}

// RequestArgs returns the insert arguments in RequestColumns order.
func RequestArgs(r *sr.Request) []any {
	var to *string
	if l := r.To(); l != nil {
		s := l.String()
		to = &s
	}
	return []any{
		r.ID(), r.CustomerID(), r.ServiceType().String(), r.From().String(),
		pgconv.StringPtrToPgtype(to), r.Status().String(),
		pgconv.UUIDPtrToPgtype(r.AssignedPartnerID()), pgconv.Int8PtrToPgtype(r.Amount()),
		r.CreatedAt(), r.UpdatedAt(),
	}
}

func ScanOffer(row pgx.Row) (*sr.Offer, error) {
	var (
		id, requestID, partnerID uuid.UUID
		price                    int64
		status                   string
		createdAt, updatedAt     time.Time
	)
	if err := row.Scan(&id, &requestID, &partnerID, &price, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p, err := sr.NewPrice(price)
	if err != nil {
		return nil, errs.Wrapf(err, "stored offer %s", id)
	}
	return sr.ReconstructOffer(id, requestID, partnerID, p, sr.OfferStatus(status), createdAt, updatedAt), nil
}

func OfferArgs(o *sr.Offer) []any {
	return []any{o.ID(), o.RequestID(), o.PartnerID(), o.Price().Value(), o.Status().String(), o.CreatedAt(), o.UpdatedAt()}
}
