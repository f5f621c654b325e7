package repository

import (
	"context"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// The head row is created on first touch so there is always a row to lock.
	ensureHeadSQL = `INSERT INTO partner_balances (partner_id) VALUES ($1) ON CONFLICT (partner_id) DO NOTHING`
	lockHeadSQL   = `SELECT seq, balance FROM partner_balances WHERE partner_id = $1 FOR UPDATE`
	insertTxSQL   = `INSERT INTO credit_transactions (` + converter.TransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	// Advancing the head is guarded by the previous seq, so a writer that
	// did not hold the lock cannot move it.
	advanceHeadSQL = `UPDATE partner_balances SET seq = $2, balance = $3, updated_at = $4
		WHERE partner_id = $1 AND seq = $5`
)

var errHeadMoved = errs.New("ledger head moved while locked")

type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

func (r *LedgerRepository) LockHead(ctx context.Context, partnerID uuid.UUID) (ledger.Head, error) {
	if _, err := r.db.Exec(ctx, ensureHeadSQL, partnerID); err != nil {
		return ledger.Head{}, wrapErr("failed to create ledger head", err)
	}
	head := ledger.Head{PartnerID: partnerID}
	if err := r.db.QueryRow(ctx, lockHeadSQL, partnerID).Scan(&head.Seq, &head.Balance); err != nil {
		return ledger.Head{}, wrapErr("failed to lock ledger head", err)
	}
	return head, nil
}

func (r *LedgerRepository) Append(ctx context.Context, t *ledger.Transaction) error {
	if _, err := r.db.Exec(ctx, insertTxSQL, converter.TransactionArgs(t)...); err != nil {
		return wrapErr("failed to append ledger transaction", err)
	}
	tag, err := r.db.Exec(ctx, advanceHeadSQL, t.PartnerID(), t.Seq(), t.BalanceAfter(), t.CreatedAt(), t.Seq()-1)
	if err != nil {
		return wrapErr("failed to advance ledger head", err)
	}
	if tag.RowsAffected() != 1 {
		return infra.WrapRepoErr("failed to advance ledger head", errHeadMoved)
	}
	return nil
}
