package commands

import (
	"context"
	"fmt"
	"log/slog"

	"roadside-marketplace/internal/domain/ledger"
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrConcurrentUpdate = errs.Define(errs.KindStateConflict, "CONCURRENT_UPDATE", "request was modified concurrently; reload and retry")

type CreateRequestInput struct {
	ServiceType  string
	FromLocation string
	ToLocation   *string
}

type CancelResult struct {
	Request *sr.Request
	// Warning is set when a partner had already been assigned.
	Warning *errs.Error
}

type MatchingCommands interface {
	CreateRequest(ctx context.Context, actor shared.Actor, in CreateRequestInput) (*sr.Request, error)
	SubmitOffer(ctx context.Context, actor shared.Actor, requestID uuid.UUID, price int64) (*sr.Offer, error)
	AcceptOffer(ctx context.Context, actor shared.Actor, offerID uuid.UUID) (*sr.Request, error)
	StartWork(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*sr.Request, error)
	CompleteRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID, finalAmount int64) (*sr.Request, error)
	CancelRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*CancelResult, error)
}

type matchingUseCaseImpl struct {
	uow        shared.UnitOfWork
	ledger     *LedgerEngine
	commission sr.CommissionPolicy
	clock      clock.Clock
}

func NewMatchingCommands(uow shared.UnitOfWork, engine *LedgerEngine, commission sr.CommissionPolicy, clk clock.Clock) MatchingCommands {
	return &matchingUseCaseImpl{
		uow:        uow,
		ledger:     engine,
		commission: commission,
		clock:      clk,
	}
}

func (uc *matchingUseCaseImpl) CreateRequest(ctx context.Context, actor shared.Actor, in CreateRequestInput) (*sr.Request, error) {
	if err := requireRole(actor, shared.Actor.IsCustomer); err != nil {
		return nil, err
	}
	req, err := sr.NewRequest(actor.ID, in.ServiceType, in.FromLocation, in.ToLocation, uc.clock.Now())
	if err != nil {
		return nil, errs.WithStack(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("service request created", "request_id", req.ID(), "service_type", req.ServiceType().String())
	return req, nil
}

func (uc *matchingUseCaseImpl) SubmitOffer(ctx context.Context, actor shared.Actor, requestID uuid.UUID, price int64) (*sr.Offer, error) {
	if err := requireRole(actor, shared.Actor.IsPartner); err != nil {
		return nil, err
	}

	var offer *sr.Offer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return translateNotFound(err, sr.ErrRequestNotFound)
		}

		o, err := sr.NewOffer(req, actor.ID, price, uc.clock.Now())
		if err != nil {
			return errs.WithStack(err)
		}
		if err := tx.Offers().Create(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithStack(sr.ErrDuplicateOffer)
			}
			return err
		}
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

func (uc *matchingUseCaseImpl) AcceptOffer(ctx context.Context, actor shared.Actor, offerID uuid.UUID) (*sr.Request, error) {
	var matched *sr.Match
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offer, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			return translateNotFound(err, sr.ErrOfferNotFound)
		}
		req, err := tx.Requests().FindByID(ctx, offer.RequestID())
		if err != nil {
			return translateNotFound(err, sr.ErrRequestNotFound)
		}
		if !actor.IsAdmin() && !actor.Is(req.CustomerID()) {
			return errs.WithStack(errs.ErrUnauthorized)
		}
		siblings, err := tx.Offers().ListByRequest(ctx, req.ID())
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		m, err := sr.AcceptOffer(req, offer, siblings, now)
		if err != nil {
			return errs.WithStack(err)
		}

		// The request row is the arbiter between concurrent accepts.
		ok, err := tx.Requests().CompareAndSet(ctx, m.Request, sr.StatusOpen)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(sr.ErrRequestNotOpen)
		}
		ok, err = tx.Offers().CompareAndSet(ctx, m.Accepted, sr.OfferSent)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(sr.ErrOfferNotPending)
		}
		if _, err := tx.Offers().RejectPending(ctx, req.ID(), offer.ID(), now); err != nil {
			return err
		}

		matched = m
		return tx.Events().Emit(ctx, shared.Event{
			Name:        shared.EventRequestMatched,
			AggregateID: req.ID(),
			OccurredAt:  now,
			Payload: map[string]any{
				"offer_id":    offer.ID().String(),
				"partner_id":  offer.PartnerID().String(),
				"customer_id": req.CustomerID().String(),
				"amount":      offer.Price().Value(),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("offer accepted",
		"request_id", matched.Request.ID(),
		"offer_id", matched.Accepted.ID(),
		"rejected_siblings", len(matched.Rejected))
	return matched.Request, nil
}

func (uc *matchingUseCaseImpl) StartWork(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*sr.Request, error) {
	var started *sr.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return translateNotFound(err, sr.ErrRequestNotFound)
		}
		if !actor.IsAdmin() && !(actor.IsPartner() && req.IsAssignedTo(actor.ID)) {
			return errs.WithStack(errs.ErrUnauthorized)
		}
		if err := req.Start(uc.clock.Now()); err != nil {
			return errs.WithStack(err)
		}
		ok, err := tx.Requests().CompareAndSet(ctx, req, sr.StatusMatched)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(ErrConcurrentUpdate)
		}
		started = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

func (uc *matchingUseCaseImpl) CompleteRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID, finalAmount int64) (*sr.Request, error) {
	var completed *sr.Request
	var earning, commission int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return translateNotFound(err, sr.ErrRequestNotFound)
		}
		if !actor.IsAdmin() && !(actor.IsPartner() && req.IsAssignedTo(actor.ID)) {
			return errs.WithStack(errs.ErrUnauthorized)
		}

		now := uc.clock.Now()
		if err := req.Complete(finalAmount, now); err != nil {
			return errs.WithStack(err)
		}
		ok, err := tx.Requests().CompareAndSet(ctx, req, sr.StatusInProgress)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(sr.ErrRequestNotInProgress)
		}

		partnerID := *req.AssignedPartnerID()
		jobID := req.ID()
		earning, commission = sr.Earning(uc.commission, finalAmount)
		if earning > 0 {
			_, err = uc.ledger.Record(ctx, tx, RecordTransactionRequest{
				PartnerID:    partnerID,
				Type:         ledger.TypeEarning,
				Amount:       earning,
				Description:  fmt.Sprintf("earning for %s job (final %d, commission %d)", req.ServiceType(), finalAmount, commission),
				RelatedJobID: &jobID,
			})
			if err != nil {
				return err
			}
		}

		completed = req
		return tx.Events().Emit(ctx, shared.Event{
			Name:        shared.EventRequestCompleted,
			AggregateID: req.ID(),
			OccurredAt:  now,
			Payload: map[string]any{
				"partner_id":   partnerID.String(),
				"final_amount": finalAmount,
				"earning":      earning,
				"commission":   commission,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("service request completed",
		"request_id", completed.ID(),
		"final_amount", finalAmount,
		"earning", earning,
		"commission", commission)
	return completed, nil
}

func (uc *matchingUseCaseImpl) CancelRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*CancelResult, error) {
	var result *CancelResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return translateNotFound(err, sr.ErrRequestNotFound)
		}
		if !actor.IsAdmin() && !actor.Is(req.CustomerID()) {
			return errs.WithStack(errs.ErrUnauthorized)
		}

		from := req.Status()
		now := uc.clock.Now()
		warning, err := req.Cancel(now)
		if err != nil {
			return errs.WithStack(err)
		}
		ok, err := tx.Requests().CompareAndSet(ctx, req, from)
		if err != nil {
			return err
		}
		if !ok {
			return errs.WithStack(ErrConcurrentUpdate)
		}
		if from == sr.StatusOpen {
			if _, err := tx.Offers().RejectPending(ctx, req.ID(), uuid.Nil, now); err != nil {
				return err
			}
		}

		result = &CancelResult{Request: req}
		if w, ok := errs.AsError(warning); ok {
			result.Warning = w
		}

		payload := map[string]any{
			"cancelled_by":  actor.ID.String(),
			"previous":      from.String(),
			"partner_alert": result.Warning != nil,
		}
		if p := req.AssignedPartnerID(); p != nil {
			payload["partner_id"] = p.String()
		}
		return tx.Events().Emit(ctx, shared.Event{
			Name:        shared.EventRequestCancelled,
			AggregateID: req.ID(),
			OccurredAt:  now,
			Payload:     payload,
		})
	})
	if err != nil {
		return nil, err
	}

	if result.Warning != nil {
		slog.Warn("cancelled a matched request", "request_id", requestID, "warning", result.Warning.Code)
	}
	return result, nil
}
