package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventRequestMatched      = "request.matched"
	EventRequestCompleted    = "request.completed"
	EventRequestCancelled    = "request.cancelled"
	EventLeadApproved        = "lead.approved"
	EventLeadRejected        = "lead.rejected"
	EventAreaApproved        = "area.approved"
	EventTransactionRecorded = "transaction.recorded"
)

// Event is a domain fact relayed to the notification collaborator after
// the emitting unit of work commits. Delivery is not guaranteed.
type Event struct {
	Name        string         `json:"name"`
	AggregateID uuid.UUID      `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

type EventSink interface {
	Emit(ctx context.Context, event Event) error
}

// Dispatcher receives committed events. Implementations talk to whatever
// notifies humans; the core only hands events over.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}
