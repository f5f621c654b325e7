package ledger

import (
	"math"
	"strings"
	"time"

	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDescriptionLength = 500

var (
	ErrInvalidType          = errs.Define(errs.KindValidation, "INVALID_TRANSACTION_TYPE", "transaction type must be one of earning, withdrawal, adjustment, refund")
	ErrAmountMustBePositive = errs.Define(errs.KindValidation, "AMOUNT_MUST_BE_POSITIVE", "amount must be positive for this transaction type")
	ErrAmountMustBeNegative = errs.Define(errs.KindValidation, "AMOUNT_MUST_BE_NEGATIVE", "amount must be negative for a withdrawal")
	ErrZeroAmount           = errs.Define(errs.KindValidation, "ZERO_AMOUNT", "amount cannot be zero")
	ErrEmptyDescription     = errs.Define(errs.KindValidation, "EMPTY_DESCRIPTION", "description cannot be empty")
	ErrDescriptionTooLong   = errs.Define(errs.KindValidation, "DESCRIPTION_TOO_LONG", "description exceeds maximum length")
	ErrMissingPartner       = errs.Define(errs.KindValidation, "MISSING_PARTNER", "partner id is required")
	ErrAmountOutOfRange     = errs.Define(errs.KindValidation, "AMOUNT_OUT_OF_RANGE", "amount would overflow the credit balance")
	ErrInsufficientBalance  = errs.Define(errs.KindInsufficientBalance, "INSUFFICIENT_BALANCE", "insufficient credit balance")
)

// Entry is a requested ledger movement before it is sequenced against a head.
type Entry struct {
	PartnerID    uuid.UUID
	Type         Type
	Amount       int64
	Description  string
	RelatedJobID *uuid.UUID
	ApprovedBy   *uuid.UUID
}

func (e Entry) Validate() error {
	if e.PartnerID == uuid.Nil {
		return ErrMissingPartner
	}
	if !e.Type.IsValid() {
		return ErrInvalidType
	}
	if err := e.Type.checkSign(e.Amount); err != nil {
		return err
	}
	desc := strings.TrimSpace(e.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if len(desc) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// Head is the running state of one partner's log: the balance after the
// last appended transaction and that transaction's sequence number.
// A zero Head is a partner with no history.
type Head struct {
	PartnerID uuid.UUID
	Seq       int64
	Balance   int64
}

// Transaction is one immutable row of the ledger.
type Transaction struct {
	id            uuid.UUID
	partnerID     uuid.UUID
	seq           int64
	txType        Type
	amount        int64
	balanceBefore int64
	balanceAfter  int64
	description   string
	createdAt     time.Time
	relatedJobID  *uuid.UUID
	approvedBy    *uuid.UUID
}

// Append sequences e after h. It is the only constructor for new
// transactions, so every row satisfies after = before + amount and
// chains onto the previous row's balance.
func (h Head) Append(e Entry, now time.Time) (*Transaction, Head, error) {
	if err := e.Validate(); err != nil {
		return nil, h, err
	}
	if h.PartnerID != uuid.Nil && h.PartnerID != e.PartnerID {
		return nil, h, errs.Wrapf(ErrMissingPartner, "head belongs to partner %s", h.PartnerID)
	}

	before := h.Balance
	if e.Amount > 0 && before > math.MaxInt64-e.Amount {
		return nil, h, errs.Wrapf(ErrAmountOutOfRange, "balance %d cannot take %d more", before, e.Amount)
	}
	after := before + e.Amount
	if e.Amount < 0 && after < 0 {
		return nil, h, errs.Wrapf(ErrInsufficientBalance, "balance %d cannot cover %d", before, -e.Amount)
	}

	tx := &Transaction{
		id:            uuid.New(),
		partnerID:     e.PartnerID,
		seq:           h.Seq + 1,
		txType:        e.Type,
		amount:        e.Amount,
		balanceBefore: before,
		balanceAfter:  after,
		description:   strings.TrimSpace(e.Description),
		createdAt:     now,
		relatedJobID:  e.RelatedJobID,
		approvedBy:    e.ApprovedBy,
	}
	return tx, Head{PartnerID: e.PartnerID, Seq: tx.seq, Balance: after}, nil
}

func ReconstructTransaction(id, partnerID uuid.UUID, seq int64, txType Type, amount, balanceBefore, balanceAfter int64, description string, createdAt time.Time, relatedJobID, approvedBy *uuid.UUID) *Transaction {
	return &Transaction{
		id:            id,
		partnerID:     partnerID,
		seq:           seq,
		txType:        txType,
		amount:        amount,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		description:   description,
		createdAt:     createdAt,
		relatedJobID:  relatedJobID,
		approvedBy:    approvedBy,
	}
}

func (t *Transaction) ID() uuid.UUID            { return t.id }
func (t *Transaction) PartnerID() uuid.UUID     { return t.partnerID }
func (t *Transaction) Seq() int64               { return t.seq }
func (t *Transaction) Type() Type               { return t.txType }
func (t *Transaction) Amount() int64            { return t.amount }
func (t *Transaction) BalanceBefore() int64     { return t.balanceBefore }
func (t *Transaction) BalanceAfter() int64      { return t.balanceAfter }
func (t *Transaction) Description() string      { return t.description }
func (t *Transaction) CreatedAt() time.Time     { return t.createdAt }
func (t *Transaction) RelatedJobID() *uuid.UUID { return t.relatedJobID }
func (t *Transaction) ApprovedBy() *uuid.UUID   { return t.approvedBy }
