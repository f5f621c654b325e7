package request

import (
	"roadside-marketplace/internal/usecase/commands"
)

type CreateServiceRequest struct {
	ServiceType  string  `json:"service_type" binding:"required"`
	FromLocation string  `json:"from_location" binding:"required"`
	ToLocation   *string `json:"to_location"`
}

func (r *CreateServiceRequest) ToInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{
		ServiceType:  r.ServiceType,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
	}
}

// Numeric bounds are left to the domain so callers get its error codes.
type SubmitOfferRequest struct {
	Price int64 `json:"price"`
}

type CompleteRequest struct {
	FinalAmount int64 `json:"final_amount"`
}
