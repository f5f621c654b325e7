package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

// keyed is anything listed in (created_at, id) keyset order.
type keyed interface {
	CreatedAt() time.Time
	ID() uuid.UUID
}

func byKey[T keyed](a, b T) int {
	ai, bi := a.ID(), b.ID()
	return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), slices.Compare(ai[:], bi[:]))
}

func afterPosition[T keyed](v T, after *queries.Position) bool {
	if after == nil {
		return true
	}
	if c := v.CreatedAt().Compare(after.CreatedAt); c != 0 {
		return c > 0
	}
	vid := v.ID()
	return slices.Compare(vid[:], after.ID[:]) > 0
}

// page sorts, skips to the position and cuts at limit.
func page[T keyed](items []T, after *queries.Position, limit int32) []T {
	slices.SortFunc(items, byKey[T])
	out := make([]T, 0, min(len(items), int(limit)))
	for _, it := range items {
		if !afterPosition(it, after) {
			continue
		}
		if len(out) == int(limit) {
			break
		}
		out = append(out, it)
	}
	return out
}

type RequestReadStore struct{ s *Store }

func (s *Store) RequestReadStore() *RequestReadStore { return &RequestReadStore{s} }

func (r *RequestReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var v *queries.RequestView
	r.s.read(func(d *state) {
		if req, ok := d.requests[id]; ok {
			v = queries.NewRequestView(req)
		}
	})
	if v == nil {
		return nil, notFound("service request not found")
	}
	return v, nil
}

func (r *RequestReadStore) FindOpen(_ context.Context, serviceType *string, after *queries.Position, limit int32) ([]*queries.RequestView, error) {
	var open []*sr.Request
	r.s.read(func(d *state) {
		for _, req := range d.requests {
			if req.Status() != sr.StatusOpen {
				continue
			}
			if serviceType != nil && req.ServiceType().String() != *serviceType {
				continue
			}
			open = append(open, req)
		}
	})

	rows := page(open, after, limit)
	views := make([]*queries.RequestView, len(rows))
	for i, req := range rows {
		views[i] = queries.NewRequestView(req)
	}
	return views, nil
}

func (r *RequestReadStore) FindOffers(_ context.Context, requestID uuid.UUID) ([]*queries.OfferView, error) {
	var views []*queries.OfferView
	r.s.read(func(d *state) {
		for _, o := range offersOf(d, requestID) {
			views = append(views, queries.NewOfferView(o))
		}
	})
	return views, nil
}

type LedgerReadStore struct{ s *Store }

func (s *Store) LedgerReadStore() *LedgerReadStore { return &LedgerReadStore{s} }

func (r *LedgerReadStore) SumAmounts(_ context.Context, partnerID uuid.UUID) (int64, error) {
	var sum int64
	r.s.read(func(d *state) {
		for _, t := range d.ledger[partnerID] {
			sum += t.Amount()
		}
	})
	return sum, nil
}

func (r *LedgerReadStore) FindHead(_ context.Context, partnerID uuid.UUID) (*queries.LedgerHeadView, error) {
	v := &queries.LedgerHeadView{PartnerID: partnerID}
	r.s.read(func(d *state) {
		h := d.heads[partnerID]
		v.Seq, v.Balance = h.Seq, h.Balance
	})
	return v, nil
}

func (r *LedgerReadStore) FindTransactions(_ context.Context, partnerID uuid.UUID, txType *string, afterSeq int64, limit int32) ([]*queries.TransactionView, error) {
	var views []*queries.TransactionView
	r.s.read(func(d *state) {
		for _, t := range d.ledger[partnerID] {
			if len(views) == int(limit) {
				return
			}
			if t.Seq() <= afterSeq || (txType != nil && t.Type().String() != *txType) {
				continue
			}
			views = append(views, queries.NewTransactionView(t))
		}
	})
	return views, nil
}

type LeadReadStore struct{ s *Store }

func (s *Store) LeadReadStore() *LeadReadStore { return &LeadReadStore{s} }

func (r *LeadReadStore) FindByID(_ context.Context, id uuid.UUID) (*lead.Purchase, error) {
	var p *lead.Purchase
	r.s.read(func(d *state) {
		if found, ok := d.leads[id]; ok {
			p = copyOf(found)
		}
	})
	if p == nil {
		return nil, notFound("lead purchase not found")
	}
	return p, nil
}

func (r *LeadReadStore) FindPending(_ context.Context, after *queries.Position, limit int32) ([]*lead.Purchase, error) {
	return r.filter(after, limit, func(p *lead.Purchase) bool { return p.Status() == lead.StatusPending }), nil
}

func (r *LeadReadStore) FindByPartner(_ context.Context, partnerID uuid.UUID, after *queries.Position, limit int32) ([]*lead.Purchase, error) {
	return r.filter(after, limit, func(p *lead.Purchase) bool { return p.PartnerID() == partnerID }), nil
}

func (r *LeadReadStore) filter(after *queries.Position, limit int32, keep func(*lead.Purchase) bool) []*lead.Purchase {
	var out []*lead.Purchase
	r.s.read(func(d *state) {
		for _, p := range d.leads {
			if keep(p) {
				out = append(out, copyOf(p))
			}
		}
	})
	return page(out, after, limit)
}

type AreaReadStore struct{ s *Store }

func (s *Store) AreaReadStore() *AreaReadStore { return &AreaReadStore{s} }

func (r *AreaReadStore) FindPending(_ context.Context, after *queries.Position, limit int32) ([]*queries.AreaRequestView, error) {
	var pending []*area.ExpansionRequest
	r.s.read(func(d *state) {
		for _, a := range d.areas {
			if a.Status() == area.StatusPending {
				pending = append(pending, a)
			}
		}
	})

	rows := page(pending, after, limit)
	views := make([]*queries.AreaRequestView, len(rows))
	for i, a := range rows {
		views[i] = queries.NewAreaRequestView(a)
	}
	return views, nil
}

type UserReadStore struct{ s *Store }

func (s *Store) UserReadStore() *UserReadStore { return &UserReadStore{s} }

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v *queries.AuthorizedUserView
	r.s.read(func(d *state) {
		if u, ok := d.users[id]; ok {
			v = queries.NewAuthorizedUserView(u)
		}
	})
	if v == nil {
		return nil, notFound("user not found")
	}
	return v, nil
}

func (r *UserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    *queries.AuthorizedUserView
		hash string
	)
	r.s.read(func(d *state) {
		for _, u := range d.users {
			if strings.EqualFold(u.Email().Value(), email) {
				v, hash = queries.NewAuthorizedUserView(u), u.PasswordHash()
				return
			}
		}
	})
	if v == nil {
		return nil, "", notFound("user not found")
	}
	return v, hash, nil
}
