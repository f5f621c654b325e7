package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"roadside-marketplace/internal/infra/repository"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errReadOnlyEmit       = errs.New("events cannot be emitted from a read-only unit of work")
)

// EventInserter writes an event into the same transaction as the state
// change it describes.
type EventInserter interface {
	InsertTx(ctx context.Context, tx pgx.Tx, event shared.Event) error
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	events EventInserter
}

func NewPostgresUoW(pool *pgxpool.Pool, events EventInserter) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		events: events,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Cross-row invariants are held by row locks and conditional updates.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, false, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, true, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, readOnly bool, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			if readOnly && pgconn.SafeToRetry(err) && attempt < maxRetries {
				if werr := wait(ctx, calculateBackoff(attempt, base)); werr != nil {
					return werr
				}
				continue
			}
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{tx: pgxTx, uow: u, readOnly: readOnly}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, readOnly, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err, readOnly) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		if err := wait(ctx, waitTime); err != nil {
			return err
		}
	}

	return errMaxRetriesExceeded
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func shouldRetry(err error, readOnly bool, attempt, maxRetries int) bool {
	return isRetryableError(err, readOnly) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

// isRetryableError: the server rolled the whole transaction back, so
// re-running fn cannot apply anything twice. Read-only work may also be
// repeated after connection failures that happened before any data was sent.
func isRetryableError(err error, readOnly bool) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return true
		default:
			return false
		}
	}
	return readOnly && pgconn.SafeToRetry(err)
}

type pgTx struct {
	tx       pgx.Tx
	uow      *PostgresUoW
	readOnly bool

	// Lazy-initialized repositories
	requestRepo *repository.RequestRepository
	offerRepo   *repository.OfferRepository
	ledgerRepo  *repository.LedgerRepository
	leadRepo    *repository.LeadRepository
	areaRepo    *repository.AreaRequestRepository
	userRepo    *repository.UserRepository
}

func (t *pgTx) Requests() shared.RequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewRequestRepository(t.tx)
	}
	return t.requestRepo
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.tx)
	}
	return t.offerRepo
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.tx)
	}
	return t.ledgerRepo
}

func (t *pgTx) Leads() shared.LeadRepository {
	if t.leadRepo == nil {
		t.leadRepo = repository.NewLeadRepository(t.tx)
	}
	return t.leadRepo
}

func (t *pgTx) AreaRequests() shared.AreaRequestRepository {
	if t.areaRepo == nil {
		t.areaRepo = repository.NewAreaRequestRepository(t.tx)
	}
	return t.areaRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.tx)
	}
	return t.userRepo
}

func (t *pgTx) Events() shared.EventSink {
	return t
}

// Emit enqueues the event in this transaction; the relay sees it only
// after commit.
func (t *pgTx) Emit(ctx context.Context, event shared.Event) error {
	if t.readOnly {
		return errReadOnlyEmit
	}
	if t.uow.events == nil {
		slog.Debug("no event inserter configured; event dropped", "event", event.Name)
		return nil
	}
	return t.uow.events.InsertTx(ctx, t.tx, event)
}
