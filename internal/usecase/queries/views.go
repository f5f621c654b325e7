package queries

import (
	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/domain/user"
)

func NewRequestView(r *sr.Request) *RequestView {
	v := &RequestView{
		ID:                r.ID(),
		CustomerID:        r.CustomerID(),
		ServiceType:       r.ServiceType().String(),
		FromLocation:      r.From().String(),
		Status:            r.Status().String(),
		AssignedPartnerID: r.AssignedPartnerID(),
		Amount:            r.Amount(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
	if to := r.To(); to != nil {
		s := to.String()
		v.ToLocation = &s
	}
	return v
}

func NewOfferView(o *sr.Offer) *OfferView {
	return &OfferView{
		ID:        o.ID(),
		RequestID: o.RequestID(),
		PartnerID: o.PartnerID(),
		Price:     o.Price().Value(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}
}

func NewTransactionView(t *ledger.Transaction) *TransactionView {
	return &TransactionView{
		ID:            t.ID(),
		PartnerID:     t.PartnerID(),
		Seq:           t.Seq(),
		Type:          t.Type().String(),
		Amount:        t.Amount(),
		BalanceBefore: t.BalanceBefore(),
		BalanceAfter:  t.BalanceAfter(),
		Description:   t.Description(),
		CreatedAt:     t.CreatedAt(),
		RelatedJobID:  t.RelatedJobID(),
		ApprovedBy:    t.ApprovedBy(),
	}
}

func NewAreaRequestView(r *area.ExpansionRequest) *AreaRequestView {
	return &AreaRequestView{
		ID:         r.ID(),
		PartnerID:  r.PartnerID(),
		Areas:      r.Areas(),
		Status:     r.Status().String(),
		Notes:      r.Notes(),
		ResolvedAt: r.ResolvedAt(),
		ResolvedBy: r.ResolvedBy(),
		CreatedAt:  r.CreatedAt(),
	}
}

func NewAuthorizedUserView(u *user.User) *AuthorizedUserView {
	areas := u.ServiceAreas()
	if areas == nil {
		areas = []string{}
	}
	return &AuthorizedUserView{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Role:         u.Role().String(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		ServiceAreas: areas,
		IsActive:     u.IsActive(),
	}
}
