package commands

import (
	"context"
	"log/slog"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type AreaCommands interface {
	RequestAreaExpansion(ctx context.Context, actor shared.Actor, areas []string) (*area.ExpansionRequest, error)
	ResolveAreaExpansion(ctx context.Context, requestID uuid.UUID, decision area.Decision, adminID uuid.UUID, notes string) (*area.ExpansionRequest, error)
}

type areaUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAreaCommands(uow shared.UnitOfWork, clk clock.Clock) AreaCommands {
	return &areaUseCaseImpl{uow: uow, clock: clk}
}

func (uc *areaUseCaseImpl) RequestAreaExpansion(ctx context.Context, actor shared.Actor, areas []string) (*area.ExpansionRequest, error) {
	if err := requireRole(actor, shared.Actor.IsPartner); err != nil {
		return nil, err
	}
	r, err := area.NewExpansionRequest(actor.ID, areas, uc.clock.Now())
	if err != nil {
		return nil, errs.WithStack(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AreaRequests().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ResolveAreaExpansion has no ledger effect. Approval only adds areas.
func (uc *areaUseCaseImpl) ResolveAreaExpansion(ctx context.Context, requestID uuid.UUID, decision area.Decision, adminID uuid.UUID, notes string) (*area.ExpansionRequest, error) {
	if _, err := area.NewDecision(string(decision)); err != nil {
		return nil, errs.WithStack(err)
	}

	var resolved *area.ExpansionRequest
	var merged []string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.AreaRequests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return translateNotFound(err, area.ErrAreaRequestNotFound)
		}

		now := uc.clock.Now()
		if decision == area.DecisionApprove {
			err = r.Approve(adminID, notes, now)
		} else {
			err = r.Reject(adminID, notes, now)
		}
		if err != nil {
			return errs.WithStack(err)
		}

		ok, err := tx.AreaRequests().Resolve(ctx, r)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(area.ErrAreaRequestResolved)
		}
		resolved = r

		if r.Status() != area.StatusApproved {
			return nil
		}
		merged, err = tx.Users().AddServiceAreas(ctx, r.PartnerID(), r.Areas())
		if err != nil {
			return translateNotFound(err, errs.ErrNotFound)
		}
		return tx.Events().Emit(ctx, shared.Event{
			Name:        shared.EventAreaApproved,
			AggregateID: r.ID(),
			OccurredAt:  now,
			Payload: map[string]any{
				"partner_id": r.PartnerID().String(),
				"areas":      r.Areas(),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("area expansion resolved",
		"area_request_id", resolved.ID(),
		"status", resolved.Status().String(),
		"service_areas", len(merged))
	return resolved, nil
}
