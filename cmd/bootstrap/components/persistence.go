package components

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/events"
	"roadside-marketplace/internal/infra/memstore"
	"roadside-marketplace/internal/infra/readstore"
	"roadside-marketplace/internal/infra/uow"
	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/internal/usecase/queries"
	"roadside-marketplace/internal/usecase/shared"
	"roadside-marketplace/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 30 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			events.NewLogDispatcher,
			fx.As(new(shared.Dispatcher)),
		),
		NewPersistence,
	),
)

// Persistence is everything the use cases need from the selected store.
type Persistence struct {
	fx.Out

	UoW      shared.UnitOfWork
	Requests queries.RequestReadStore
	Ledger   queries.LedgerReadStore
	Leads    queries.LeadReadStore
	Areas    queries.AreaReadStore
	Users    queries.UserReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, dispatcher shared.Dispatcher, logger *slog.Logger) (Persistence, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return newMemoryPersistence(cfg, dispatcher, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return NewPostgresPersistence(ctx, lc, cfg, pool, dispatcher)
}

// NewPostgresPersistence wires an existing pool. The river client is
// started and stopped with the application.
func NewPostgresPersistence(ctx context.Context, lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, dispatcher shared.Dispatcher) (Persistence, error) {
	if cfg.DB.AutoMigrate {
		if err := db.ApplyMigrations(ctx, pool, migrations.FS); err != nil {
			return Persistence{}, err
		}
	}
	if err := events.Migrate(ctx, pool); err != nil {
		return Persistence{}, err
	}

	client, err := events.NewClient(pool, dispatcher, cfg.Events)
	if err != nil {
		return Persistence{}, fmt.Errorf("failed to create event relay: %w", err)
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return client.Stop(ctx)
		},
	})

	return Persistence{
		UoW:      uow.NewPostgresUoW(pool, events.NewPublisher(client)),
		Requests: readstore.NewRequestReadStore(pool),
		Ledger:   readstore.NewLedgerReadStore(pool),
		Leads:    readstore.NewLeadReadStore(pool),
		Areas:    readstore.NewAreaReadStore(pool),
		Users:    readstore.NewUserReadStore(pool),
	}, nil
}

func newMemoryPersistence(cfg config.Config, dispatcher shared.Dispatcher, logger *slog.Logger) (Persistence, error) {
	store := memstore.New(dispatcher)
	if cfg.Store.DemoPassword != "" {
		users, err := store.SeedDemoUsers(cfg.Store.DemoPassword)
		if err != nil {
			return Persistence{}, err
		}
		for _, u := range users {
			logger.Info("demo user seeded", "email", u.Email().Value(), "role", u.Role().String(), "user_id", u.ID())
		}
	}
	logger.Warn("using in-memory store; data is lost on restart")

	return Persistence{
		UoW:      store,
		Requests: store.RequestReadStore(),
		Ledger:   store.LedgerReadStore(),
		Leads:    store.LeadReadStore(),
		Areas:    store.AreaReadStore(),
		Users:    store.UserReadStore(),
	}, nil
}
