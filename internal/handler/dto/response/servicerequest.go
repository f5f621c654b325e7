package response

import (
	"time"

	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRequestResponse struct {
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

type OfferResponse struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CancelResponse struct {
	Request *ServiceRequestResponse `json:"request"`
	Warning *WarningResponse        `json:"warning,omitempty"`
}

func FromRequestView(v *queries.RequestView) *ServiceRequestResponse {
	return copyAs[ServiceRequestResponse](v)
}

func FromRequest(r *sr.Request) *ServiceRequestResponse {
	return FromRequestView(queries.NewRequestView(r))
}

func FromOffer(o *sr.Offer) *OfferResponse {
	return copyAs[OfferResponse](queries.NewOfferView(o))
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	return copyAll[OfferResponse](views)
}

func FromCancelResult(res *commands.CancelResult) *CancelResponse {
	out := &CancelResponse{Request: FromRequest(res.Request)}
	if res.Warning != nil {
		out.Warning = &WarningResponse{Code: res.Warning.Code, Message: res.Warning.Message}
	}
	return out
}
