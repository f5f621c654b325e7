//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/infra/memstore"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"
	"roadside-marketplace/internal/usecase/shared"
	"roadside-marketplace/tests/common/builder"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, e shared.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
	return nil
}

func (d *recordingDispatcher) names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.events))
	for i, e := range d.events {
		out[i] = e.Name
	}
	return out
}

// marketplace wires every command against one in-memory store.
type marketplace struct {
	store      *memstore.Store
	events     *recordingDispatcher
	clock      *clock.MockClock
	engine     *commands.LedgerEngine
	matching   commands.MatchingCommands
	leads      commands.LeadCommands
	areas      commands.AreaCommands
	admin      commands.AdminCommands
	ledgerQ    queries.LedgerQueries
	leadQ      queries.LeadQueries
	requestQ   queries.RequestQueries
	customer   shared.Actor
	partner    shared.Actor
	adminActor shared.Actor
}

func newMarketplace(t *testing.T, commissionPercent string) *marketplace {
	t.Helper()

	events := &recordingDispatcher{}
	store := memstore.New(events)
	clk := clock.NewMockClock(fixedNow)
	policy, err := sr.NewPercentageCommission(commissionPercent)
	require.NoError(t, err)

	engine := commands.NewLedgerEngine(store, clk)
	leads := commands.NewLeadCommands(store, engine, clk)
	areas := commands.NewAreaCommands(store, clk)

	m := &marketplace{
		store:    store,
		events:   events,
		clock:    clk,
		engine:   engine,
		matching: commands.NewMatchingCommands(store, engine, policy, clk),
		leads:    leads,
		areas:    areas,
		admin:    commands.NewAdminCommands(store, leads, areas, engine),
		ledgerQ:  queries.NewLedgerQueries(store.LedgerReadStore()),
		leadQ:    queries.NewLeadQueries(store.LeadReadStore()),
		requestQ: queries.NewRequestQueries(store.RequestReadStore()),
	}
	m.customer = m.seed(t, builder.NewUserBuilder().WithEmail("customer@example.com").WithName("Jane Driver"))
	m.partner = m.seed(t, builder.NewUserBuilder().WithEmail("partner@example.com").AsPartner())
	m.adminActor = m.seed(t, builder.NewUserBuilder().WithEmail("admin@example.com").AsAdmin())
	return m
}

func (m *marketplace) seed(t *testing.T, b *builder.UserBuilder) shared.Actor {
	t.Helper()
	u, err := b.BuildDomain()
	require.NoError(t, err)
	m.store.SeedUser(u)
	return shared.Actor{ID: u.ID(), Role: u.Role()}
}

func (m *marketplace) newPartner(t *testing.T, email string) shared.Actor {
	t.Helper()
	return m.seed(t, builder.NewUserBuilder().WithEmail(email).WithRole(string(user.RolePartner)))
}

func (m *marketplace) fund(t *testing.T, partner shared.Actor, amount int64) {
	t.Helper()
	if amount == 0 {
		return
	}
	_, err := m.engine.RecordTransaction(context.Background(), commands.RecordTransactionRequest{
		PartnerID:   partner.ID,
		Type:        ledger.TypeAdjustment,
		Amount:      amount,
		Description: "opening credits",
	})
	require.NoError(t, err)
}

func (m *marketplace) balance(t *testing.T, partner shared.Actor) int64 {
	t.Helper()
	b, err := m.ledgerQ.GetBalance(context.Background(), partner.ID)
	require.NoError(t, err)
	return b
}

func (m *marketplace) openRequest(t *testing.T) *sr.Request {
	t.Helper()
	to := "Main St Garage"
	req, err := m.matching.CreateRequest(context.Background(), m.customer, commands.CreateRequestInput{
		ServiceType:  "towing",
		FromLocation: "Highway 1, exit 12",
		ToLocation:   &to,
	})
	require.NoError(t, err)
	return req
}

func (m *marketplace) offer(t *testing.T, partner shared.Actor, req *sr.Request, price int64) *sr.Offer {
	t.Helper()
	o, err := m.matching.SubmitOffer(context.Background(), partner, req.ID(), price)
	require.NoError(t, err)
	return o
}

// inProgress drives a fresh request through offer, accept and start.
func (m *marketplace) inProgress(t *testing.T, price int64) *sr.Request {
	t.Helper()
	ctx := context.Background()
	req := m.openRequest(t)
	o := m.offer(t, m.partner, req, price)
	_, err := m.matching.AcceptOffer(ctx, m.customer, o.ID())
	require.NoError(t, err)
	started, err := m.matching.StartWork(ctx, m.partner, req.ID())
	require.NoError(t, err)
	return started
}

func newCustomerBuilder(email string) *builder.UserBuilder {
	return builder.NewUserBuilder().WithEmail(email)
}
