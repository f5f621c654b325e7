package request

import (
	"roadside-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type ResolveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Notes    string `json:"notes" binding:"max=1000"`
}

type AdjustCreditsRequest struct {
	Type        string `json:"type" binding:"required"`
	Amount      int64  `json:"amount"`
	Description string `json:"description" binding:"required"`
}

func (r *AdjustCreditsRequest) ToInput(partnerID uuid.UUID) commands.AdjustCreditsInput {
	return commands.AdjustCreditsInput{
		PartnerID:   partnerID,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
