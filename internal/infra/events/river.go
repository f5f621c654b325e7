package events

import (
	"context"
	"fmt"
	"log/slog"

	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
)

const QueueEvents = "domain_events"

// DomainEventArgs carries one committed domain event through river.
type DomainEventArgs struct {
	Event shared.Event `json:"event"`
}

func (DomainEventArgs) Kind() string { return "domain_event" }

func (DomainEventArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: QueueEvents, MaxAttempts: 5}
}

// RelayWorker hands jobs to the dispatcher. A dispatcher error makes river
// retry the job; after MaxAttempts the event is discarded.
type RelayWorker struct {
	river.WorkerDefaults[DomainEventArgs]
	dispatcher shared.Dispatcher
}

func NewRelayWorker(dispatcher shared.Dispatcher) *RelayWorker {
	return &RelayWorker{dispatcher: dispatcher}
}

func (w *RelayWorker) Work(ctx context.Context, job *river.Job[DomainEventArgs]) error {
	if err := w.dispatcher.Dispatch(ctx, job.Args.Event); err != nil {
		return fmt.Errorf("dispatch %s (attempt %d): %w", job.Args.Event.Name, job.Attempt, err)
	}
	return nil
}

// Publisher inserts event jobs in the caller's transaction, so a job exists
// only if the business change committed.
type Publisher struct {
	client *river.Client[pgx.Tx]
}

func NewPublisher(client *river.Client[pgx.Tx]) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) InsertTx(ctx context.Context, tx pgx.Tx, event shared.Event) error {
	if _, err := p.client.InsertTx(ctx, tx, DomainEventArgs{Event: event}, nil); err != nil {
		return fmt.Errorf("enqueue %s: %w", event.Name, err)
	}
	return nil
}

func NewClient(pool *pgxpool.Pool, dispatcher shared.Dispatcher, cfg config.EventsConfig) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRelayWorker(dispatcher))

	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			QueueEvents: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create river client: %w", err)
	}
	return client, nil
}

// Migrate installs or upgrades river's own tables.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("river migrate up failed: %w", err)
	}
	for _, v := range res.Versions {
		slog.Info("river migration applied", "version", v.Version)
	}
	return nil
}
