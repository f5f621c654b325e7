package events

import (
	"context"
	"log/slog"

	"roadside-marketplace/internal/usecase/shared"
)

// LogDispatcher is the default notification collaborator: it records each
// event as a structured log line for an external relay to pick up.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, event shared.Event) error {
	d.logger.InfoContext(ctx, "domain event",
		"event", event.Name,
		"aggregate_id", event.AggregateID,
		"occurred_at", event.OccurredAt,
		"payload", event.Payload)
	return nil
}
