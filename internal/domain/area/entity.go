package area

import (
	"slices"
	"strings"
	"time"

	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxAreasPerRequest = 20
	MaxAreaNameLength  = 100
)

var (
	ErrNoAreas             = errs.Define(errs.KindValidation, "NO_AREAS", "at least one service area is required")
	ErrTooManyAreas        = errs.Define(errs.KindValidation, "TOO_MANY_AREAS", "too many service areas in one request")
	ErrInvalidAreaName     = errs.Define(errs.KindValidation, "INVALID_AREA_NAME", "service area name is empty or too long")
	ErrInvalidDecision     = errs.Define(errs.KindValidation, "INVALID_DECISION", "decision must be approve or reject")
	ErrAreaRequestResolved = errs.Define(errs.KindStateConflict, "AREA_REQUEST_NOT_PENDING", "area expansion request has already been resolved")
	ErrAreaRequestNotFound = errs.Define(errs.KindNotFound, "AREA_REQUEST_NOT_FOUND", "area expansion request not found")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string { return string(s) }

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

// ExpansionRequest asks an admin to add service areas to a partner.
type ExpansionRequest struct {
	id         uuid.UUID
	partnerID  uuid.UUID
	areas      []string
	status     Status
	notes      string
	resolvedAt *time.Time
	resolvedBy *uuid.UUID
	createdAt  time.Time
}

func NewExpansionRequest(partnerID uuid.UUID, areas []string, now time.Time) (*ExpansionRequest, error) {
	normalized, err := NormalizeAreas(areas)
	if err != nil {
		return nil, err
	}
	return &ExpansionRequest{
		id:        uuid.New(),
		partnerID: partnerID,
		areas:     normalized,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructExpansionRequest(id, partnerID uuid.UUID, areas []string, status Status, notes string, resolvedAt *time.Time, resolvedBy *uuid.UUID, createdAt time.Time) *ExpansionRequest {
	return &ExpansionRequest{
		id:         id,
		partnerID:  partnerID,
		areas:      areas,
		status:     status,
		notes:      notes,
		resolvedAt: resolvedAt,
		resolvedBy: resolvedBy,
		createdAt:  createdAt,
	}
}

func (r *ExpansionRequest) ID() uuid.UUID          { return r.id }
func (r *ExpansionRequest) PartnerID() uuid.UUID   { return r.partnerID }
func (r *ExpansionRequest) Areas() []string        { return slices.Clone(r.areas) }
func (r *ExpansionRequest) Status() Status         { return r.status }
func (r *ExpansionRequest) Notes() string          { return r.notes }
func (r *ExpansionRequest) ResolvedAt() *time.Time { return r.resolvedAt }
func (r *ExpansionRequest) ResolvedBy() *uuid.UUID { return r.resolvedBy }
func (r *ExpansionRequest) CreatedAt() time.Time   { return r.createdAt }

func (r *ExpansionRequest) Approve(adminID uuid.UUID, notes string, now time.Time) error {
	return r.resolve(StatusApproved, adminID, notes, now)
}

func (r *ExpansionRequest) Reject(adminID uuid.UUID, notes string, now time.Time) error {
	return r.resolve(StatusRejected, adminID, notes, now)
}

func (r *ExpansionRequest) resolve(to Status, adminID uuid.UUID, notes string, now time.Time) error {
	if r.status != StatusPending {
		return ErrAreaRequestResolved
	}
	r.status = to
	r.notes = strings.TrimSpace(notes)
	r.resolvedAt = &now
	r.resolvedBy = &adminID
	return nil
}

// NormalizeAreas trims, lowercases and de-duplicates area names.
func NormalizeAreas(areas []string) ([]string, error) {
	if len(areas) == 0 {
		return nil, ErrNoAreas
	}
	if len(areas) > MaxAreasPerRequest {
		return nil, ErrTooManyAreas
	}
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		n := strings.ToLower(strings.TrimSpace(a))
		if n == "" || len(n) > MaxAreaNameLength {
			return nil, ErrInvalidAreaName
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out, nil
}
