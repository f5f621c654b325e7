package readstore

import (
	"context"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/pgconv"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	sumAmountsSQL   = `SELECT COALESCE(SUM(amount), 0)::bigint FROM credit_transactions WHERE partner_id = $1`
	headSQL         = `SELECT seq, balance FROM partner_balances WHERE partner_id = $1`
	transactionsSQL = `SELECT ` + converter.TransactionColumns + ` FROM credit_transactions
		WHERE partner_id = $1 AND seq > $2 AND ($3::text IS NULL OR type = $3)
		ORDER BY seq
		LIMIT $4`
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

func (s *LedgerReadStore) SumAmounts(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	var sum int64
	if err := s.db.QueryRow(ctx, sumAmountsSQL, partnerID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to fold ledger", err)
	}
	return sum, nil
}

func (s *LedgerReadStore) FindHead(ctx context.Context, partnerID uuid.UUID) (*queries.LedgerHeadView, error) {
	head := &queries.LedgerHeadView{PartnerID: partnerID}
	err := s.db.QueryRow(ctx, headSQL, partnerID).Scan(&head.Seq, &head.Balance)
	if err != nil && !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to read ledger head", err)
	}
	return head, nil
}

func (s *LedgerReadStore) FindTransactions(ctx context.Context, partnerID uuid.UUID, txType *string, afterSeq int64, limit int32) ([]*queries.TransactionView, error) {
	rows, err := s.db.Query(ctx, transactionsSQL, partnerID, afterSeq, pgconv.StringPtrToPgtype(txType), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger transactions", err)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*ledger.Transaction, error) {
		return converter.ScanTransaction(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan ledger transactions", err)
	}

	views := make([]*queries.TransactionView, len(txs))
	for i, t := range txs {
		views[i] = queries.NewTransactionView(t)
	}
	return views, nil
}
