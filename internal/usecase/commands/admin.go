package commands

import (
	"context"
	"log/slog"

	"roadside-marketplace/internal/domain/area"
	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdjustmentType = errs.Define(errs.KindValidation, "INVALID_ADJUSTMENT_TYPE", "manual entries must be of type adjustment or refund")
	ErrNotAPartner           = errs.Define(errs.KindValidation, "NOT_A_PARTNER", "credits can only be adjusted for partner accounts")
	ErrPartnerNotFound       = errs.Define(errs.KindNotFound, "PARTNER_NOT_FOUND", "partner not found")
)

type AdjustCreditsInput struct {
	PartnerID   uuid.UUID
	Type        string
	Amount      int64
	Description string
}

// AdminCommands is the approval surface. It authorizes the caller and
// hands the decision to the owning use case.
type AdminCommands interface {
	ResolveLeadPurchase(ctx context.Context, actor shared.Actor, leadID uuid.UUID, decision string, notes string) (*lead.Purchase, error)
	ResolveAreaExpansion(ctx context.Context, actor shared.Actor, requestID uuid.UUID, decision string, notes string) (*area.ExpansionRequest, error)
	AdjustCredits(ctx context.Context, actor shared.Actor, in AdjustCreditsInput) (*ledger.Transaction, error)
}

type adminUseCaseImpl struct {
	uow    shared.UnitOfWork
	leads  LeadCommands
	areas  AreaCommands
	ledger *LedgerEngine
}

func NewAdminCommands(uow shared.UnitOfWork, leads LeadCommands, areas AreaCommands, engine *LedgerEngine) AdminCommands {
	return &adminUseCaseImpl{uow: uow, leads: leads, areas: areas, ledger: engine}
}

func (uc *adminUseCaseImpl) ResolveLeadPurchase(ctx context.Context, actor shared.Actor, leadID uuid.UUID, decision string, notes string) (*lead.Purchase, error) {
	if err := requireRole(actor, shared.Actor.IsAdmin); err != nil {
		return nil, err
	}
	d, err := lead.NewDecision(decision)
	if err != nil {
		return nil, errs.WithStack(err)
	}
	return uc.leads.ResolveLeadPurchase(ctx, leadID, d, actor.ID, notes)
}

func (uc *adminUseCaseImpl) ResolveAreaExpansion(ctx context.Context, actor shared.Actor, requestID uuid.UUID, decision string, notes string) (*area.ExpansionRequest, error) {
	if err := requireRole(actor, shared.Actor.IsAdmin); err != nil {
		return nil, err
	}
	d, err := area.NewDecision(decision)
	if err != nil {
		return nil, errs.WithStack(err)
	}
	return uc.areas.ResolveAreaExpansion(ctx, requestID, d, actor.ID, notes)
}

func (uc *adminUseCaseImpl) AdjustCredits(ctx context.Context, actor shared.Actor, in AdjustCreditsInput) (*ledger.Transaction, error) {
	if err := requireRole(actor, shared.Actor.IsAdmin); err != nil {
		return nil, err
	}
	txType, err := ledger.NewType(in.Type)
	if err != nil {
		return nil, errs.WithStack(err)
	}
	if txType != ledger.TypeAdjustment && txType != ledger.TypeRefund {
		return nil, errs.WithStack(ErrInvalidAdjustmentType)
	}

	adminID := actor.ID
	var recorded *ledger.Transaction
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		partner, err := tx.Users().FindByID(ctx, in.PartnerID)
		if err != nil {
			return translateNotFound(err, ErrPartnerNotFound)
		}
		if partner.Role() != user.RolePartner {
			return errs.WithStack(ErrNotAPartner)
		}

		t, err := uc.ledger.Record(ctx, tx, RecordTransactionRequest{
			PartnerID:   in.PartnerID,
			Type:        txType,
			Amount:      in.Amount,
			Description: in.Description,
			ApprovedBy:  &adminID,
		})
		if err != nil {
			return err
		}
		recorded = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("manual ledger entry recorded",
		"partner_id", in.PartnerID,
		"type", txType.String(),
		"amount", in.Amount,
		"admin_id", adminID)
	return recorded, nil
}
