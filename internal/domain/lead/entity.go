package lead

import (
	"strings"
	"time"

	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// CreditCost is the number of credits one approved purchase debits.
const CreditCost int64 = 1

const MaxNotesLength = 1000

var (
	ErrInvalidDecision      = errs.Define(errs.KindValidation, "INVALID_DECISION", "decision must be approve or reject")
	ErrNotesTooLong         = errs.Define(errs.KindValidation, "NOTES_TOO_LONG", "notes exceed maximum length")
	ErrIncompleteCustomer   = errs.Define(errs.KindValidation, "INCOMPLETE_CUSTOMER_INFO", "customer name and location are required to approve a lead")
	ErrLeadNotPending       = errs.Define(errs.KindStateConflict, "LEAD_NOT_PENDING", "lead purchase request has already been resolved")
	ErrLeadAlreadyRequested = errs.Define(errs.KindStateConflict, "LEAD_ALREADY_REQUESTED", "a pending lead purchase already exists for this request")
	ErrLeadNotFound         = errs.Define(errs.KindNotFound, "LEAD_NOT_FOUND", "lead purchase request not found")
)

type Purchase struct {
	id         uuid.UUID
	partnerID  uuid.UUID
	requestID  uuid.UUID
	creditCost int64
	createdAt  time.Time
	state      State
}

func NewPurchase(partnerID, requestID uuid.UUID, now time.Time) *Purchase {
	return &Purchase{
		id:         uuid.New(),
		partnerID:  partnerID,
		requestID:  requestID,
		creditCost: CreditCost,
		createdAt:  now,
		state:      Pending{},
	}
}

func ReconstructPurchase(id, partnerID, requestID uuid.UUID, creditCost int64, createdAt time.Time, state State) *Purchase {
	return &Purchase{
		id:         id,
		partnerID:  partnerID,
		requestID:  requestID,
		creditCost: creditCost,
		createdAt:  createdAt,
		state:      state,
	}
}

func (p *Purchase) ID() uuid.UUID        { return p.id }
func (p *Purchase) PartnerID() uuid.UUID { return p.partnerID }
func (p *Purchase) RequestID() uuid.UUID { return p.requestID }
func (p *Purchase) CreditCost() int64    { return p.creditCost }
func (p *Purchase) CreatedAt() time.Time { return p.createdAt }
func (p *Purchase) State() State         { return p.state }
func (p *Purchase) Status() Status       { return p.state.Status() }

// CustomerInfo is present only once the purchase is approved.
func (p *Purchase) CustomerInfo() (CustomerInfo, bool) {
	if a, ok := p.state.(Approved); ok {
		return a.Customer, true
	}
	return CustomerInfo{}, false
}

func (p *Purchase) Resolution() (Resolution, bool) {
	switch s := p.state.(type) {
	case Approved:
		return s.Resolution, true
	case Rejected:
		return s.Resolution, true
	default:
		return Resolution{}, false
	}
}

func (p *Purchase) Approve(info CustomerInfo, adminID uuid.UUID, notes string, now time.Time) error {
	res, err := p.resolution(adminID, notes, now)
	if err != nil {
		return err
	}
	info.Name = strings.TrimSpace(info.Name)
	info.Location = strings.TrimSpace(info.Location)
	if info.Name == "" || info.Location == "" {
		return ErrIncompleteCustomer
	}
	p.state = Approved{Resolution: res, Customer: info}
	return nil
}

func (p *Purchase) Reject(adminID uuid.UUID, notes string, now time.Time) error {
	res, err := p.resolution(adminID, notes, now)
	if err != nil {
		return err
	}
	p.state = Rejected{Resolution: res}
	return nil
}

func (p *Purchase) resolution(adminID uuid.UUID, notes string, now time.Time) (Resolution, error) {
	if _, ok := p.state.(Pending); !ok {
		return Resolution{}, ErrLeadNotPending
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLength {
		return Resolution{}, ErrNotesTooLong
	}
	return Resolution{ResolvedAt: now, ResolvedBy: adminID, Notes: notes}, nil
}
