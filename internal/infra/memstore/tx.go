package memstore

import (
	"context"
	"slices"
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errNoRow       = errs.New("no row")
	errUniqueRow   = errs.New("unique constraint")
	errMissingUser = errs.New("referenced user does not exist")
	errSeqGuard    = errs.New("sequence does not follow head")
	errNegative    = errs.New("balance would go negative")
)

type memTx struct {
	data     *state
	readOnly bool
	events   []shared.Event
}

func (t *memTx) Requests() shared.RequestRepository         { return requestRepo{t} }
func (t *memTx) Offers() shared.OfferRepository             { return offerRepo{t} }
func (t *memTx) Ledger() shared.LedgerRepository            { return ledgerRepo{t} }
func (t *memTx) Leads() shared.LeadRepository               { return leadRepo{t} }
func (t *memTx) AreaRequests() shared.AreaRequestRepository { return areaRepo{t} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t} }
func (t *memTx) Events() shared.EventSink                   { return t }

func (t *memTx) Emit(_ context.Context, event shared.Event) error {
	if t.readOnly {
		return errReadOnlyEmit
	}
	t.events = append(t.events, event)
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRow, infra.KindNotFound)
}

func copyOf[T any](v *T) *T {
	c := *v
	return &c
}

type requestRepo struct{ tx *memTx }

func (r requestRepo) Create(_ context.Context, req *sr.Request) error {
	if _, ok := r.tx.data.users[req.CustomerID()]; !ok {
		return infra.WrapRepoErr("failed to create service request", errMissingUser, infra.KindForeignKeyViolated)
	}
	if _, ok := r.tx.data.requests[req.ID()]; ok {
		return infra.WrapRepoErr("failed to create service request", errUniqueRow, infra.KindDuplicateKey)
	}
	r.tx.data.requests[req.ID()] = copyOf(req)
	return nil
}

func (r requestRepo) FindByID(_ context.Context, id uuid.UUID) (*sr.Request, error) {
	req, ok := r.tx.data.requests[id]
	if !ok {
		return nil, notFound("service request not found")
	}
	return copyOf(req), nil
}

// The unit of work already holds the store lock.
func (r requestRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*sr.Request, error) {
	return r.FindByID(ctx, id)
}

func (r requestRepo) CompareAndSet(_ context.Context, req *sr.Request, from sr.Status) (bool, error) {
	cur, ok := r.tx.data.requests[req.ID()]
	if !ok || cur.Status() != from {
		return false, nil
	}
	r.tx.data.requests[req.ID()] = copyOf(req)
	return true, nil
}

type offerRepo struct{ tx *memTx }

func (r offerRepo) Create(_ context.Context, offer *sr.Offer) error {
	if _, ok := r.tx.data.requests[offer.RequestID()]; !ok {
		return infra.WrapRepoErr("failed to create offer", errNoRow, infra.KindForeignKeyViolated)
	}
	for _, o := range r.tx.data.offers {
		if o.RequestID() == offer.RequestID() && o.PartnerID() == offer.PartnerID() && o.IsPending() {
			return infra.WrapRepoErr("failed to create offer", errUniqueRow, infra.KindDuplicateKey)
		}
	}
	r.tx.data.offers[offer.ID()] = copyOf(offer)
	return nil
}

func (r offerRepo) FindByID(_ context.Context, id uuid.UUID) (*sr.Offer, error) {
	o, ok := r.tx.data.offers[id]
	if !ok {
		return nil, notFound("offer not found")
	}
	return copyOf(o), nil
}

func (r offerRepo) ListByRequest(_ context.Context, requestID uuid.UUID) ([]*sr.Offer, error) {
	return offersOf(r.tx.data, requestID), nil
}

func (r offerRepo) CompareAndSet(_ context.Context, offer *sr.Offer, from sr.OfferStatus) (bool, error) {
	cur, ok := r.tx.data.offers[offer.ID()]
	if !ok || cur.Status() != from {
		return false, nil
	}
	if offer.Status() == sr.OfferAccepted {
		for _, o := range r.tx.data.offers {
			if o.RequestID() == offer.RequestID() && o.Status() == sr.OfferAccepted {
				return false, infra.WrapRepoErr("failed to update offer", errUniqueRow, infra.KindDuplicateKey)
			}
		}
	}
	r.tx.data.offers[offer.ID()] = copyOf(offer)
	return true, nil
}

func (r offerRepo) RejectPending(_ context.Context, requestID uuid.UUID, keep uuid.UUID, now time.Time) (int64, error) {
	others := slices.DeleteFunc(offersOf(r.tx.data, requestID), func(o *sr.Offer) bool {
		return o.ID() == keep
	})
	rejected := sr.RejectPending(others, now)
	for _, o := range others {
		if slices.Contains(rejected, o.ID()) {
			r.tx.data.offers[o.ID()] = o
		}
	}
	return int64(len(rejected)), nil
}

func offersOf(d *state, requestID uuid.UUID) []*sr.Offer {
	var out []*sr.Offer
	for _, o := range d.offers {
		if o.RequestID() == requestID {
			out = append(out, copyOf(o))
		}
	}
	slices.SortFunc(out, byKey[*sr.Offer])
	return out
}

type ledgerRepo struct{ tx *memTx }

func (r ledgerRepo) LockHead(_ context.Context, partnerID uuid.UUID) (ledger.Head, error) {
	if _, ok := r.tx.data.users[partnerID]; !ok {
		return ledger.Head{}, infra.WrapRepoErr("failed to create ledger head", errMissingUser, infra.KindForeignKeyViolated)
	}
	head, ok := r.tx.data.heads[partnerID]
	if !ok {
		head = ledger.Head{PartnerID: partnerID}
	}
	return head, nil
}

func (r ledgerRepo) Append(_ context.Context, t *ledger.Transaction) error {
	head := r.tx.data.heads[t.PartnerID()]
	if t.Seq() != head.Seq+1 || t.BalanceBefore() != head.Balance {
		return infra.WrapRepoErr("failed to append ledger transaction", errSeqGuard, infra.KindDuplicateKey)
	}
	if t.BalanceAfter() < 0 {
		return infra.WrapRepoErr("failed to append ledger transaction", errNegative, infra.KindCheckViolated)
	}
	r.tx.data.ledger[t.PartnerID()] = append(r.tx.data.ledger[t.PartnerID()], copyOf(t))
	r.tx.data.heads[t.PartnerID()] = ledger.Head{PartnerID: t.PartnerID(), Seq: t.Seq(), Balance: t.BalanceAfter()}
	return nil
}

type leadRepo struct{ tx *memTx }

func (r leadRepo) Create(_ context.Context, p *lead.Purchase) error {
	for _, l := range r.tx.data.leads {
		if l.PartnerID() == p.PartnerID() && l.RequestID() == p.RequestID() && l.Status() != lead.StatusRejected {
			return infra.WrapRepoErr("failed to create lead purchase", errUniqueRow, infra.KindDuplicateKey)
		}
	}
	r.tx.data.leads[p.ID()] = copyOf(p)
	return nil
}

func (r leadRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*lead.Purchase, error) {
	p, ok := r.tx.data.leads[id]
	if !ok {
		return nil, notFound("lead purchase not found")
	}
	return copyOf(p), nil
}

func (r leadRepo) Resolve(_ context.Context, p *lead.Purchase) (bool, error) {
	cur, ok := r.tx.data.leads[p.ID()]
	if !ok || cur.Status() != lead.StatusPending {
		return false, nil
	}
	r.tx.data.leads[p.ID()] = copyOf(p)
	return true, nil
}

type areaRepo struct{ tx *memTx }

func (r areaRepo) Create(_ context.Context, req *area.ExpansionRequest) error {
	r.tx.data.areas[req.ID()] = copyOf(req)
	return nil
}

func (r areaRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*area.ExpansionRequest, error) {
	req, ok := r.tx.data.areas[id]
	if !ok {
		return nil, notFound("area request not found")
	}
	return copyOf(req), nil
}

func (r areaRepo) Resolve(_ context.Context, req *area.ExpansionRequest) (bool, error) {
	cur, ok := r.tx.data.areas[req.ID()]
	if !ok || cur.Status() != area.StatusPending {
		return false, nil
	}
	r.tx.data.areas[req.ID()] = copyOf(req)
	return true, nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.data.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return copyOf(u), nil
}

func (r userRepo) AddServiceAreas(_ context.Context, partnerID uuid.UUID, areas []string) ([]string, error) {
	u, ok := r.tx.data.users[partnerID]
	if !ok {
		return nil, notFound("user not found")
	}
	merged := user.MergeServiceAreas(u.ServiceAreas(), areas)
	r.tx.data.users[partnerID] = user.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Role(), u.Name(), u.Phone(),
		merged, u.LastLogin(), u.IsActive(), u.CreatedAt(), time.Now())
	return merged, nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	u, ok := r.tx.data.users[userID]
	if !ok {
		return notFound("user not found")
	}
	r.tx.data.users[userID] = user.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Role(), u.Name(), u.Phone(),
		u.ServiceAreas(), &at, u.IsActive(), u.CreatedAt(), u.UpdatedAt())
	return nil
}
