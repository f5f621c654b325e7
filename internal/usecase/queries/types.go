package queries

import (
	"time"

	"github.com/google/uuid"
)

// RequestView represents read-optimized service request data
type RequestView struct {
	ID                uuid.UUID  `json:"id"`
	CustomerID        uuid.UUID  `json:"customer_id"`
	ServiceType       string     `json:"service_type"`
	FromLocation      string     `json:"from_location"`
	ToLocation        *string    `json:"to_location,omitempty"`
	Status            string     `json:"status"`
	AssignedPartnerID *uuid.UUID `json:"assigned_partner_id,omitempty"`
	Amount            *int64     `json:"amount,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type OfferView struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionView is one immutable ledger row.
type TransactionView struct {
	ID            uuid.UUID  `json:"id"`
	PartnerID     uuid.UUID  `json:"partner_id"`
	Seq           int64      `json:"seq"`
	Type          string     `json:"type"`
	Amount        int64      `json:"amount"`
	BalanceBefore int64      `json:"balance_before"`
	BalanceAfter  int64      `json:"balance_after"`
	Description   string     `json:"description"`
	CreatedAt     time.Time  `json:"created_at"`
	RelatedJobID  *uuid.UUID `json:"related_job_id,omitempty"`
	ApprovedBy    *uuid.UUID `json:"approved_by,omitempty"`
}

// LedgerHeadView is the cached running total the write side locks on.
type LedgerHeadView struct {
	PartnerID uuid.UUID `json:"partner_id"`
	Seq       int64     `json:"seq"`
	Balance   int64     `json:"balance"`
}

type CustomerInfoView struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type LeadView struct {
	ID           uuid.UUID         `json:"id"`
	PartnerID    uuid.UUID         `json:"partner_id"`
	RequestID    uuid.UUID         `json:"request_id"`
	CreditCost   int64             `json:"credit_cost"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	ResolvedAt   *time.Time        `json:"resolved_at,omitempty"`
	ResolvedBy   *uuid.UUID        `json:"resolved_by,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	CustomerInfo *CustomerInfoView `json:"customer_info,omitempty"`
}

type AreaRequestView struct {
	ID         uuid.UUID  `json:"id"`
	PartnerID  uuid.UUID  `json:"partner_id"`
	Areas      []string   `json:"areas"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy *uuid.UUID `json:"resolved_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	ServiceAreas []string  `json:"service_areas"`
	IsActive     bool      `json:"is_active"`
}
