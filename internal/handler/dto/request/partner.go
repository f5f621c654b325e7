package request

import "github.com/google/uuid"

type WithdrawalRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description" binding:"max=500"`
}

type LeadPurchaseRequest struct {
	RequestID uuid.UUID `json:"request_id" binding:"required"`
}

type AreaExpansionRequest struct {
	Areas []string `json:"areas" binding:"required"`
}
