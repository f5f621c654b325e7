// Package memstore is the in-process persistence driver. Every unit of
// work runs under one mutex against a private copy of the state, which
// replaces the shared state only when fn succeeds.
package memstore

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnlyEmit = errs.New("events cannot be emitted from a read-only unit of work")

// Stored values are never mutated in place; writers put fresh copies, so a
// shallow map copy is enough to isolate a unit of work.
type state struct {
	users    map[uuid.UUID]*user.User
	requests map[uuid.UUID]*sr.Request
	offers   map[uuid.UUID]*sr.Offer
	heads    map[uuid.UUID]ledger.Head
	ledger   map[uuid.UUID][]*ledger.Transaction
	leads    map[uuid.UUID]*lead.Purchase
	areas    map[uuid.UUID]*area.ExpansionRequest
}

func newState() *state {
	return &state{
		users:    map[uuid.UUID]*user.User{},
		requests: map[uuid.UUID]*sr.Request{},
		offers:   map[uuid.UUID]*sr.Offer{},
		heads:    map[uuid.UUID]ledger.Head{},
		ledger:   map[uuid.UUID][]*ledger.Transaction{},
		leads:    map[uuid.UUID]*lead.Purchase{},
		areas:    map[uuid.UUID]*area.ExpansionRequest{},
	}
}

func (s *state) clone() *state {
	c := &state{
		users:    maps.Clone(s.users),
		requests: maps.Clone(s.requests),
		offers:   maps.Clone(s.offers),
		heads:    maps.Clone(s.heads),
		ledger:   make(map[uuid.UUID][]*ledger.Transaction, len(s.ledger)),
		leads:    maps.Clone(s.leads),
		areas:    maps.Clone(s.areas),
	}
	for k, v := range s.ledger {
		c.ledger[k] = slices.Clip(v)
	}
	return c
}

type Store struct {
	mu         sync.Mutex
	data       *state
	dispatcher shared.Dispatcher
}

func New(dispatcher shared.Dispatcher) *Store {
	return &Store{data: newState(), dispatcher: dispatcher}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.commit(ctx, fn)
	if err != nil {
		return err
	}
	s.dispatch(ctx, tx.events)
	return nil
}

// commit holds the lock for fn and swaps in its state on success. A panic
// in fn unwinds through the deferred unlock and leaves the state untouched.
func (s *Store) commit(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (*memTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{data: s.data.clone()}
	if err := fn(ctx, tx); err != nil {
		return nil, err
	}
	s.data = tx.data
	return tx, nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Writes land in a throwaway copy.
	return fn(ctx, &memTx{data: s.data.clone(), readOnly: true})
}

// dispatch runs after the commit, outside the lock. Failures are logged;
// delivery is best effort.
func (s *Store) dispatch(ctx context.Context, events []shared.Event) {
	if s.dispatcher == nil {
		return
	}
	for _, e := range events {
		if err := s.dispatcher.Dispatch(context.WithoutCancel(ctx), e); err != nil {
			slog.Warn("event dispatch failed", "event", e.Name, "aggregate_id", e.AggregateID, "error", err.Error())
		}
	}
}

// SeedUser inserts or replaces a user outside any unit of work.
func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *u
	s.data.users[u.ID()] = &c
}

// read runs fn against the committed state.
func (s *Store) read(fn func(d *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}
