package commands

import (
	"context"
	"fmt"
	"log/slog"

	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/ptr"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeadCommands interface {
	RequestLeadPurchase(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*lead.Purchase, error)
	// ResolveLeadPurchase is reached through AdminCommands, which owns the
	// role check.
	ResolveLeadPurchase(ctx context.Context, leadID uuid.UUID, decision lead.Decision, adminID uuid.UUID, notes string) (*lead.Purchase, error)
}

type leadUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *LedgerEngine
	clock  clock.Clock
}

func NewLeadCommands(uow shared.UnitOfWork, engine *LedgerEngine, clk clock.Clock) LeadCommands {
	return &leadUseCaseImpl{uow: uow, ledger: engine, clock: clk}
}

func (uc *leadUseCaseImpl) RequestLeadPurchase(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*lead.Purchase, error) {
	if err := requireRole(actor, shared.Actor.IsPartner); err != nil {
		return nil, err
	}

	var purchase *lead.Purchase
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return translateNotFound(err, sr.ErrRequestNotFound)
		}
		if req.Status().IsTerminal() {
			return errs.Wrapf(sr.ErrRequestNotOpen, "request is %s", req.Status())
		}

		p := lead.NewPurchase(actor.ID, req.ID(), uc.clock.Now())
		if err := tx.Leads().Create(ctx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithStack(lead.ErrLeadAlreadyRequested)
			}
			return err
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("lead purchase requested", "lead_id", purchase.ID(), "partner_id", actor.ID, "request_id", requestID)
	return purchase, nil
}

func (uc *leadUseCaseImpl) ResolveLeadPurchase(ctx context.Context, leadID uuid.UUID, decision lead.Decision, adminID uuid.UUID, notes string) (*lead.Purchase, error) {
	if _, err := lead.NewDecision(string(decision)); err != nil {
		return nil, errs.WithStack(err)
	}

	var resolved *lead.Purchase
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Leads().FindByIDForUpdate(ctx, leadID)
		if err != nil {
			return translateNotFound(err, lead.ErrLeadNotFound)
		}
		if p.Status() != lead.StatusPending {
			return errs.WithStack(lead.ErrLeadNotPending)
		}

		now := uc.clock.Now()
		var event shared.Event
		switch decision {
		case lead.DecisionApprove:
			info, err := uc.customerInfo(ctx, tx, p.RequestID())
			if err != nil {
				return err
			}

			// Debit first: a failed debit leaves the purchase pending.
			t, err := uc.ledger.Record(ctx, tx, RecordTransactionRequest{
				PartnerID:    p.PartnerID(),
				Type:         ledger.TypeAdjustment,
				Amount:       -p.CreditCost(),
				Description:  fmt.Sprintf("lead purchase %s", p.ID()),
				RelatedJobID: ptr.Of(p.RequestID()),
				ApprovedBy:   &adminID,
			})
			if err != nil {
				return err
			}

			if err := p.Approve(info, adminID, notes, now); err != nil {
				return errs.WithStack(err)
			}
			event = shared.Event{
				Name:        shared.EventLeadApproved,
				AggregateID: p.ID(),
				OccurredAt:  now,
				Payload: map[string]any{
					"partner_id":     p.PartnerID().String(),
					"request_id":     p.RequestID().String(),
					"transaction_id": t.ID().String(),
				},
			}
		case lead.DecisionReject:
			if err := p.Reject(adminID, notes, now); err != nil {
				return errs.WithStack(err)
			}
			event = shared.Event{
				Name:        shared.EventLeadRejected,
				AggregateID: p.ID(),
				OccurredAt:  now,
				Payload: map[string]any{
					"partner_id": p.PartnerID().String(),
					"request_id": p.RequestID().String(),
				},
			}
		}

		ok, err := tx.Leads().Resolve(ctx, p)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(lead.ErrLeadNotPending)
		}
		resolved = p
		return tx.Events().Emit(ctx, event)
	})
	if err != nil {
		if errs.Is(err, ledger.ErrInsufficientBalance) {
			slog.Warn("lead approval blocked by balance", "lead_id", leadID, "admin_id", adminID)
		}
		return nil, err
	}

	slog.Info("lead purchase resolved",
		"lead_id", resolved.ID(),
		"status", resolved.Status().String(),
		"admin_id", adminID)
	return resolved, nil
}

// customerInfo assembles the contact details revealed on approval: the
// customer's profile plus the pickup location of the request.
func (uc *leadUseCaseImpl) customerInfo(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (lead.CustomerInfo, error) {
	req, err := tx.Requests().FindByID(ctx, requestID)
	if err != nil {
		return lead.CustomerInfo{}, translateNotFound(err, sr.ErrRequestNotFound)
	}
	customer, err := tx.Users().FindByID(ctx, req.CustomerID())
	if err != nil {
		return lead.CustomerInfo{}, translateNotFound(err, errs.ErrNotFound)
	}
	return lead.CustomerInfo{
		Name:     customer.Name(),
		Phone:    customer.Phone(),
		Location: req.From().String(),
	}, nil
}
