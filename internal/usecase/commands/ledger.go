package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidWithdrawal = errs.Define(errs.KindValidation, "INVALID_WITHDRAWAL", "withdrawal amount must be a positive number of credits")

type RecordTransactionRequest struct {
	PartnerID    uuid.UUID
	Type         ledger.Type
	Amount       int64
	Description  string
	RelatedJobID *uuid.UUID
	ApprovedBy   *uuid.UUID
}

func (r RecordTransactionRequest) entry() ledger.Entry {
	return ledger.Entry{
		PartnerID:    r.PartnerID,
		Type:         r.Type,
		Amount:       r.Amount,
		Description:  r.Description,
		RelatedJobID: r.RelatedJobID,
		ApprovedBy:   r.ApprovedBy,
	}
}

type LedgerCommands interface {
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (*ledger.Transaction, error)
	RequestWithdrawal(ctx context.Context, actor shared.Actor, amount int64, description string) (*ledger.Transaction, error)
}

// LedgerEngine is the only component that appends ledger rows. Other
// use cases call Record inside their own unit of work so the ledger write
// commits or rolls back together with their state change.
type LedgerEngine struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerEngine(uow shared.UnitOfWork, clk clock.Clock) *LedgerEngine {
	return &LedgerEngine{uow: uow, clock: clk}
}

func NewLedgerCommands(engine *LedgerEngine) LedgerCommands {
	return engine
}

// Record appends one transaction within tx. The partner's head stays
// locked until tx ends.
func (e *LedgerEngine) Record(ctx context.Context, tx shared.Tx, req RecordTransactionRequest) (*ledger.Transaction, error) {
	entry := req.entry()
	if err := entry.Validate(); err != nil {
		return nil, errs.WithStack(err)
	}

	head, err := tx.Ledger().LockHead(ctx, entry.PartnerID)
	if err != nil {
		return nil, err
	}

	t, _, err := head.Append(entry, e.clock.Now())
	if err != nil {
		if errs.Is(err, ledger.ErrInsufficientBalance) {
			slog.Warn("ledger debit rejected",
				"partner_id", entry.PartnerID,
				"balance", head.Balance,
				"amount", entry.Amount)
		}
		return nil, err
	}

	if err := tx.Ledger().Append(ctx, t); err != nil {
		if infra.IsKind(err, infra.KindCheckViolated) {
			return nil, errs.Wrap(ledger.ErrInsufficientBalance, err.Error())
		}
		return nil, err
	}

	err = tx.Events().Emit(ctx, shared.Event{
		Name:        shared.EventTransactionRecorded,
		AggregateID: t.PartnerID(),
		OccurredAt:  t.CreatedAt(),
		Payload: map[string]any{
			"transaction_id": t.ID().String(),
			"type":           t.Type().String(),
			"amount":         t.Amount(),
			"balance_after":  t.BalanceAfter(),
		},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (e *LedgerEngine) RecordTransaction(ctx context.Context, req RecordTransactionRequest) (*ledger.Transaction, error) {
	var recorded *ledger.Transaction
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := e.Record(ctx, tx, req)
		if err != nil {
			return err
		}
		recorded = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("ledger transaction recorded",
		"partner_id", recorded.PartnerID(),
		"type", recorded.Type().String(),
		"amount", recorded.Amount(),
		"balance_after", recorded.BalanceAfter())
	return recorded, nil
}

func (e *LedgerEngine) RequestWithdrawal(ctx context.Context, actor shared.Actor, amount int64, description string) (*ledger.Transaction, error) {
	if err := requireRole(actor, shared.Actor.IsPartner); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.WithStack(ErrInvalidWithdrawal)
	}
	if strings.TrimSpace(description) == "" {
		description = fmt.Sprintf("withdrawal of %d credits", amount)
	}
	return e.RecordTransaction(ctx, RecordTransactionRequest{
		PartnerID:   actor.ID,
		Type:        ledger.TypeWithdrawal,
		Amount:      -amount,
		Description: description,
	})
}
