package converter

import (
	"time"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const TransactionColumns = `id, partner_id, seq, type, amount, balance_before, balance_after,
	description, related_job_id, approved_by, created_at`

func ScanTransaction(row pgx.Row) (*ledger.Transaction, error) {
	var (
		id, partnerID              uuid.UUID
		seq, amount, before, after int64
		txType, description        string
		relatedJob, approvedBy     pgtype.UUID
		createdAt                  time.Time
	)
	if err := row.Scan(&id, &partnerID, &seq, &txType, &amount, &before, &after, &description, &relatedJob, &approvedBy, &createdAt); err != nil {
		return nil, err
	}
	return ledger.ReconstructTransaction(id, partnerID, seq, ledger.Type(txType), amount, before, after, description, createdAt,
		pgconv.UUIDPtrFromPgtype(relatedJob), pgconv.UUIDPtrFromPgtype(approvedBy)), nil
}

func TransactionArgs(t *ledger.Transaction) []any {
	return []any{
		t.ID(), t.PartnerID(), t.Seq(), t.Type().String(), t.Amount(), t.BalanceBefore(), t.BalanceAfter(),
		t.Description(), pgconv.UUIDPtrToPgtype(t.RelatedJobID()), pgconv.UUIDPtrToPgtype(t.ApprovedBy()), t.CreatedAt(),
	}
}
