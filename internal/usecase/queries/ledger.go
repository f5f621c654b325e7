package queries

import (
	"context"
	"iter"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

type TransactionFilter struct {
	Type *string
}

type LedgerReadStore interface {
	// SumAmounts folds the partner's whole log.
	SumAmounts(ctx context.Context, partnerID uuid.UUID) (int64, error)
	// FindHead returns a zero head for a partner with no history.
	FindHead(ctx context.Context, partnerID uuid.UUID) (*LedgerHeadView, error)
	// FindTransactions returns rows with seq > afterSeq in ascending seq order.
	FindTransactions(ctx context.Context, partnerID uuid.UUID, txType *string, afterSeq int64, limit int32) ([]*TransactionView, error)
}

// LedgerAudit is the result of replaying a partner's log.
type LedgerAudit struct {
	PartnerID    uuid.UUID `json:"partner_id"`
	Transactions int       `json:"transactions"`
	Balance      int64     `json:"balance"`
	HeadSeq      int64     `json:"head_seq"`
	HeadBalance  int64     `json:"head_balance"`
	Consistent   bool      `json:"consistent"`
	Problem      string    `json:"problem,omitempty"`
}

type LedgerQueries interface {
	GetBalance(ctx context.Context, partnerID uuid.UUID) (int64, error)
	ListTransactions(ctx context.Context, partnerID uuid.UUID, filter TransactionFilter, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
	AllTransactions(ctx context.Context, partnerID uuid.UUID, filter TransactionFilter) iter.Seq2[*TransactionView, error]
	VerifyLedger(ctx context.Context, partnerID uuid.UUID) (*LedgerAudit, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

// GetBalance is always derived from the log, never read from a counter.
func (q *ledgerQueriesImpl) GetBalance(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	return q.store.SumAmounts(ctx, partnerID)
}

func (q *ledgerQueriesImpl) ListTransactions(ctx context.Context, partnerID uuid.UUID, filter TransactionFilter, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	if err := filter.validate(); err != nil {
		return nil, nil, err
	}
	var afterSeq int64
	if !cursor.empty() {
		seq, err := DecodeSeqCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Wrap(ErrInvalidCursor, err.Error())
		}
		afterSeq = seq
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.FindTransactions(ctx, partnerID, filter.Type, afterSeq, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(last *TransactionView) string {
		return EncodeSeqCursor(last.Seq)
	})
	return rows, next, nil
}

// AllTransactions pages through the log lazily. Iteration stops at the
// first error, which is yielded once.
func (q *ledgerQueriesImpl) AllTransactions(ctx context.Context, partnerID uuid.UUID, filter TransactionFilter) iter.Seq2[*TransactionView, error] {
	return func(yield func(*TransactionView, error) bool) {
		if err := filter.validate(); err != nil {
			yield(nil, err)
			return
		}
		var afterSeq int64
		for {
			rows, err := q.store.FindTransactions(ctx, partnerID, filter.Type, afterSeq, MaxListLimit)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, row := range rows {
				if !yield(row, nil) {
					return
				}
			}
			if len(rows) < MaxListLimit {
				return
			}
			afterSeq = rows[len(rows)-1].Seq
		}
	}
}

// VerifyLedger audits the log against the head read before it. Rows
// appended after that read are left out unless the head never caught up
// with them, in which case the whole log is audited against the head.
func (q *ledgerQueriesImpl) VerifyLedger(ctx context.Context, partnerID uuid.UUID) (*LedgerAudit, error) {
	head, err := q.store.FindHead(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	var links []ledger.Link
	for t, err := range q.AllTransactions(ctx, partnerID, TransactionFilter{}) {
		if err != nil {
			return nil, err
		}
		links = append(links, ledger.Link{
			Seq:           t.Seq,
			Amount:        t.Amount,
			BalanceBefore: t.BalanceBefore,
			BalanceAfter:  t.BalanceAfter,
		})
	}

	stale := false
	if n := len(links); n > 0 && links[n-1].Seq > head.Seq {
		latest, err := q.store.FindHead(ctx, partnerID)
		if err != nil {
			return nil, err
		}
		if latest.Seq < links[n-1].Seq {
			stale = true
		} else {
			cut := 0
			for cut < n && links[cut].Seq <= head.Seq {
				cut++
			}
			links = links[:cut]
		}
	}

	audit := &LedgerAudit{
		PartnerID:    partnerID,
		Transactions: len(links),
		HeadSeq:      head.Seq,
		HeadBalance:  head.Balance,
	}
	amounts := make([]int64, len(links))
	for i, l := range links {
		amounts[i] = l.Amount
	}
	audit.Balance = ledger.Fold(amounts...)

	chainEnd, err := ledger.VerifyChain(links)
	switch {
	case err != nil:
		audit.Problem = err.Error()
	case chainEnd != audit.Balance:
		audit.Problem = "chain end does not match folded balance"
	case stale || head.Balance != audit.Balance || head.Seq != int64(len(links)):
		audit.Problem = "cached head is out of step with the log"
	default:
		audit.Consistent = true
	}
	return audit, nil
}

func (f TransactionFilter) validate() error {
	if f.Type == nil {
		return nil
	}
	if _, err := ledger.NewType(*f.Type); err != nil {
		return errs.WithStack(err)
	}
	return nil
}
