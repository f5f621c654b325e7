package queries

import (
	"context"

	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

// LeadReadStore hands back domain purchases so the only way to reach
// customer details is through the Approved state.
type LeadReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lead.Purchase, error)
	FindPending(ctx context.Context, after *Position, limit int32) ([]*lead.Purchase, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID, after *Position, limit int32) ([]*lead.Purchase, error)
}

type LeadQueries interface {
	GetLead(ctx context.Context, actor shared.Actor, id uuid.UUID) (*LeadView, error)
	ListPendingLeads(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*LeadView, *Cursor, error)
	ListPartnerLeads(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*LeadView, *Cursor, error)
}

type leadQueriesImpl struct {
	store LeadReadStore
}

func NewLeadQueries(store LeadReadStore) LeadQueries {
	return &leadQueriesImpl{store: store}
}

func (q *leadQueriesImpl) GetLead(ctx context.Context, actor shared.Actor, id uuid.UUID) (*LeadView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithStack(lead.ErrLeadNotFound)
		}
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Is(p.PartnerID()) {
		// Other partners must not learn that the purchase exists.
		return nil, errs.WithStack(lead.ErrLeadNotFound)
	}
	return NewLeadView(p), nil
}

func (q *leadQueriesImpl) ListPendingLeads(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*LeadView, *Cursor, error) {
	if !actor.IsAdmin() {
		return nil, nil, errs.WithStack(errs.ErrUnauthorized)
	}
	return q.page(cursor, limit, func(after *Position, n int32) ([]*lead.Purchase, error) {
		return q.store.FindPending(ctx, after, n)
	})
}

func (q *leadQueriesImpl) ListPartnerLeads(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*LeadView, *Cursor, error) {
	if !actor.IsPartner() {
		return nil, nil, errs.WithStack(errs.ErrUnauthorized)
	}
	return q.page(cursor, limit, func(after *Position, n int32) ([]*lead.Purchase, error) {
		return q.store.FindByPartner(ctx, actor.ID, after, n)
	})
}

func (q *leadQueriesImpl) page(cursor *Cursor, limit int, fetch func(after *Position, n int32) ([]*lead.Purchase, error)) ([]*LeadView, *Cursor, error) {
	after, err := cursor.position()
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := fetch(after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(last *lead.Purchase) string {
		return EncodeAfterCursor(last.CreatedAt(), last.ID())
	})

	views := make([]*LeadView, len(rows))
	for i, p := range rows {
		views[i] = NewLeadView(p)
	}
	return views, next, nil
}

// NewLeadView projects a purchase. CustomerInfo is filled only for the
// Approved state.
func NewLeadView(p *lead.Purchase) *LeadView {
	v := &LeadView{
		ID:         p.ID(),
		PartnerID:  p.PartnerID(),
		RequestID:  p.RequestID(),
		CreditCost: p.CreditCost(),
		Status:     p.Status().String(),
		CreatedAt:  p.CreatedAt(),
	}
	if res, ok := p.Resolution(); ok {
		resolvedAt, resolvedBy := res.ResolvedAt, res.ResolvedBy
		v.ResolvedAt = &resolvedAt
		v.ResolvedBy = &resolvedBy
		v.Notes = res.Notes
	}
	if info, ok := p.CustomerInfo(); ok {
		v.CustomerInfo = &CustomerInfoView{
			Name:     info.Name,
			Phone:    info.Phone,
			Location: info.Location,
		}
	}
	return v
}
