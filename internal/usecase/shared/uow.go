package shared

import (
	"context"
	"time"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. Events emitted through
	// tx.Events() become visible only if fn returns nil and the commit succeeds.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Requests() RequestRepository
	Offers() OfferRepository
	Ledger() LedgerRepository
	Leads() LeadRepository
	AreaRequests() AreaRequestRepository
	Users() UserRepository
	Events() EventSink
}

type RequestRepository interface {
	Create(ctx context.Context, req *servicerequest.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*servicerequest.Request, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*servicerequest.Request, error)
	// CompareAndSet persists req's status, partner and amount only while the
	// stored status still equals from. false means another writer moved it first.
	CompareAndSet(ctx context.Context, req *servicerequest.Request, from servicerequest.Status) (bool, error)
}

type OfferRepository interface {
	Create(ctx context.Context, offer *servicerequest.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*servicerequest.Offer, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*servicerequest.Offer, error)
	CompareAndSet(ctx context.Context, offer *servicerequest.Offer, from servicerequest.OfferStatus) (bool, error)
	// RejectPending rejects every sent offer of the request except keep.
	RejectPending(ctx context.Context, requestID uuid.UUID, keep uuid.UUID, now time.Time) (int64, error)
}

type LedgerRepository interface {
	// LockHead returns the partner's head and holds it until the unit of
	// work ends, so no other writer can append for that partner meanwhile.
	LockHead(ctx context.Context, partnerID uuid.UUID) (ledger.Head, error)
	// Append stores t and advances the head; t.Seq() must be head.Seq+1.
	Append(ctx context.Context, t *ledger.Transaction) error
}

type LeadRepository interface {
	Create(ctx context.Context, p *lead.Purchase) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lead.Purchase, error)
	// Resolve stores the resolved state while the stored row is still pending.
	Resolve(ctx context.Context, p *lead.Purchase) (bool, error)
}

type AreaRequestRepository interface {
	Create(ctx context.Context, r *area.ExpansionRequest) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*area.ExpansionRequest, error)
	Resolve(ctx context.Context, r *area.ExpansionRequest) (bool, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	AddServiceAreas(ctx context.Context, partnerID uuid.UUID, areas []string) ([]string, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
