package servicerequest

import (
	"time"

	"github.com/google/uuid"
)

type Request struct {
	id                uuid.UUID
	customerID        uuid.UUID
	serviceType       ServiceType
	from              Location
	to                *Location
	status            Status
	assignedPartnerID *uuid.UUID
	amount            *int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRequest(customerID uuid.UUID, serviceType string, from string, to *string, now time.Time) (*Request, error) {
	st, err := NewServiceType(serviceType)
	if err != nil {
		return nil, err
	}
	fromLoc, err := NewLocation(from)
	if err != nil {
		return nil, err
	}
	var toLoc *Location
	if to != nil && *to != "" {
		l, lerr := NewLocation(*to)
		if lerr != nil {
			return nil, lerr
		}
		toLoc = &l
	}

	return &Request{
		id:          uuid.New(),
		customerID:  customerID,
		serviceType: st,
		from:        fromLoc,
		to:          toLoc,
		status:      StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRequest(id, customerID uuid.UUID, serviceType ServiceType, from Location, to *Location, status Status, assignedPartnerID *uuid.UUID, amount *int64, createdAt, updatedAt time.Time) *Request {
	return &Request{
		id:                id,
		customerID:        customerID,
		serviceType:       serviceType,
		from:              from,
		to:                to,
		status:            status,
		assignedPartnerID: assignedPartnerID,
		amount:            amount,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Request) ID() uuid.UUID                 { return r.id }
func (r *Request) CustomerID() uuid.UUID         { return r.customerID }
func (r *Request) ServiceType() ServiceType      { return r.serviceType }
func (r *Request) From() Location                { return r.from }
func (r *Request) To() *Location                 { return r.to }
func (r *Request) Status() Status                { return r.status }
func (r *Request) AssignedPartnerID() *uuid.UUID { return r.assignedPartnerID }
func (r *Request) Amount() *int64                { return r.amount }
func (r *Request) CreatedAt() time.Time          { return r.createdAt }
func (r *Request) UpdatedAt() time.Time          { return r.updatedAt }

func (r *Request) IsAssignedTo(partnerID uuid.UUID) bool {
	return r.assignedPartnerID != nil && *r.assignedPartnerID == partnerID
}

func (r *Request) EnsureOpen() error {
	if r.status != StatusOpen {
		return ErrRequestNotOpen
	}
	return nil
}

// Start moves a matched request into in_progress.
func (r *Request) Start(now time.Time) error {
	if r.status != StatusMatched || r.assignedPartnerID == nil {
		return ErrRequestNotMatched
	}
	r.status = StatusInProgress
	r.updatedAt = now
	return nil
}

// Complete requires in_progress; matched requests must be started first.
func (r *Request) Complete(finalAmount int64, now time.Time) error {
	if r.status != StatusInProgress || r.assignedPartnerID == nil {
		return ErrRequestNotInProgress
	}
	if finalAmount <= 0 {
		return ErrInvalidFinalAmount
	}
	r.status = StatusCompleted
	r.amount = &finalAmount
	r.updatedAt = now
	return nil
}

// Cancel returns ErrOfferAlreadyAccepted as a warning when a partner was
// already assigned; the cancellation itself still happens.
func (r *Request) Cancel(now time.Time) (warning error, err error) {
	switch r.status {
	case StatusCompleted, StatusCancelled:
		return nil, ErrCannotCancelTerminal
	case StatusInProgress:
		return nil, ErrCannotCancelInProgress
	case StatusMatched:
		warning = ErrOfferAlreadyAccepted
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return warning, nil
}

type Offer struct {
	id        uuid.UUID
	requestID uuid.UUID
	partnerID uuid.UUID
	price     Price
	status    OfferStatus
	createdAt time.Time
	updatedAt time.Time
}

func NewOffer(req *Request, partnerID uuid.UUID, price int64, now time.Time) (*Offer, error) {
	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}
	if err := req.EnsureOpen(); err != nil {
		return nil, err
	}
	return &Offer{
		id:        uuid.New(),
		requestID: req.ID(),
		partnerID: partnerID,
		price:     p,
		status:    OfferSent,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOffer(id, requestID, partnerID uuid.UUID, price Price, status OfferStatus, createdAt, updatedAt time.Time) *Offer {
	return &Offer{
		id:        id,
		requestID: requestID,
		partnerID: partnerID,
		price:     price,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) RequestID() uuid.UUID { return o.requestID }
func (o *Offer) PartnerID() uuid.UUID { return o.partnerID }
func (o *Offer) Price() Price         { return o.price }
func (o *Offer) Status() OfferStatus  { return o.status }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
func (o *Offer) IsPending() bool      { return o.status == OfferSent }
