package response

import (
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	PartnerID uuid.UUID `json:"partner_id"`
	Balance   int64     `json:"balance"`
}

type TransactionResponse struct {
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

type CustomerInfoResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// CustomerInfo is present only once the purchase is approved.
type LeadResponse struct {
	ID           uuid.UUID             `json:"id"`
	PartnerID    uuid.UUID             `json:"partner_id"`
	RequestID    uuid.UUID             `json:"request_id"`
	CreditCost   int64                 `json:"credit_cost"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	ResolvedAt   *time.Time            `json:"resolved_at,omitempty"`
	ResolvedBy   *uuid.UUID            `json:"resolved_by,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	CustomerInfo *CustomerInfoResponse `json:"customer_info,omitempty"`
}

type AreaRequestResponse struct {
	ID         uuid.UUID  `json:"id"`
	PartnerID  uuid.UUID  `json:"partner_id"`
	Areas      []string   `json:"areas"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy *uuid.UUID `json:"resolved_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type LedgerAuditResponse struct {
	PartnerID    uuid.UUID `json:"partner_id"`
	Transactions int       `json:"transactions"`
	Balance      int64     `json:"balance"`
	HeadSeq      int64     `json:"head_seq"`
	HeadBalance  int64     `json:"head_balance"`
	Consistent   bool      `json:"consistent"`
	Problem      string    `json:"problem,omitempty"`
}

func FromTransaction(t *ledger.Transaction) *TransactionResponse {
	return copyAs[TransactionResponse](queries.NewTransactionView(t))
}

func FromLead(p *lead.Purchase) *LeadResponse {
	return FromLeadView(queries.NewLeadView(p))
}

func FromLeadView(v *queries.LeadView) *LeadResponse {
	out := copyAs[LeadResponse](v)
	out.CustomerInfo = nil
	if v.CustomerInfo != nil {
		out.CustomerInfo = copyAs[CustomerInfoResponse](v.CustomerInfo)
	}
	return out
}

func FromLeadViews(views []*queries.LeadView) []*LeadResponse {
	out := make([]*LeadResponse, len(views))
	for i, v := range views {
		out[i] = FromLeadView(v)
	}
	return out
}

func FromAreaRequest(r *area.ExpansionRequest) *AreaRequestResponse {
	return copyAs[AreaRequestResponse](queries.NewAreaRequestView(r))
}

func FromLedgerAudit(a *queries.LedgerAudit) *LedgerAuditResponse {
	return copyAs[LedgerAuditResponse](a)
}
