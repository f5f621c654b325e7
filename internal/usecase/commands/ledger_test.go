//go:build unit

package commands_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"
	"roadside-marketplace/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("emits a recorded event after commit", func(t *testing.T) {
		m := newMarketplace(t, "15")

		tx, err := m.engine.RecordTransaction(ctx, commands.RecordTransactionRequest{
			PartnerID:   m.partner.ID,
			Type:        ledger.TypeEarning,
			Amount:      40,
			Description: "bonus job",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), tx.Seq())
		assert.Equal(t, []string{shared.EventTransactionRecorded}, m.events.names())
	})

	t.Run("rejected debit leaves no trace", func(t *testing.T) {
		m := newMarketplace(t, "15")
		m.fund(t, m.partner, 10)

		_, err := m.engine.RecordTransaction(ctx, commands.RecordTransactionRequest{
			PartnerID:   m.partner.ID,
			Type:        ledger.TypeAdjustment,
			Amount:      -11,
			Description: "overdraw",
		})

		require.ErrorIs(t, err, ledger.ErrInsufficientBalance)
		assert.Equal(t, int64(10), m.balance(t, m.partner))
		txs, _, err := m.ledgerQ.ListTransactions(ctx, m.partner.ID, queries.TransactionFilter{}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.Len(t, m.events.names(), 1)
	})

	t.Run("validation runs before the head is touched", func(t *testing.T) {
		m := newMarketplace(t, "15")

		_, err := m.engine.RecordTransaction(ctx, commands.RecordTransactionRequest{
			PartnerID:   m.partner.ID,
			Type:        ledger.TypeEarning,
			Amount:      -5,
			Description: "wrong sign",
		})

		require.ErrorIs(t, err, ledger.ErrAmountMustBePositive)
		assert.Empty(t, m.events.names())
	})
}

func TestRequestWithdrawal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		funded      int64
		amount      int64
		errIs       error
		wantBalance int64
	}{
		{name: "within balance", funded: 50, amount: 20, wantBalance: 30},
		{name: "whole balance", funded: 50, amount: 50, wantBalance: 0},
		{name: "beyond balance", funded: 50, amount: 51, errIs: ledger.ErrInsufficientBalance, wantBalance: 50},
		{name: "zero amount", funded: 50, amount: 0, errIs: commands.ErrInvalidWithdrawal, wantBalance: 50},
		{name: "negative amount", funded: 50, amount: -3, errIs: commands.ErrInvalidWithdrawal, wantBalance: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMarketplace(t, "15")
			m.fund(t, m.partner, tt.funded)

			tx, err := m.engine.RequestWithdrawal(ctx, m.partner, tt.amount, "")

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, ledger.TypeWithdrawal, tx.Type())
				assert.Equal(t, -tt.amount, tx.Amount())
				assert.NotEmpty(t, tx.Description())
			}
			assert.Equal(t, tt.wantBalance, m.balance(t, m.partner))
		})
	}

	t.Run("admins cannot withdraw for themselves", func(t *testing.T) {
		m := newMarketplace(t, "15")

		_, err := m.engine.RequestWithdrawal(ctx, m.adminActor, 1, "")

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

// Random concurrent credits and debits must leave a log whose fold equals
// the cached head and whose running balance never goes negative.
func TestConcurrentMovementsKeepLedgerConsistent(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(t, "15")
	m.fund(t, m.partner, 20)

	rng := rand.New(rand.NewPCG(1, 2))
	amounts := make([]int64, 200)
	for i := range amounts {
		amounts[i] = rng.Int64N(21) - 10
		if amounts[i] == 0 {
			amounts[i] = 1
		}
	}

	var wg sync.WaitGroup
	for _, a := range amounts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.engine.RecordTransaction(ctx, commands.RecordTransactionRequest{
				PartnerID:   m.partner.ID,
				Type:        ledger.TypeAdjustment,
				Amount:      a,
				Description: "random movement",
			})
			if err != nil && !errs.Is(err, ledger.ErrInsufficientBalance) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	var (
		folded int64
		seq    int64
	)
	for tx, err := range m.ledgerQ.AllTransactions(ctx, m.partner.ID, queries.TransactionFilter{}) {
		require.NoError(t, err)
		seq++
		assert.Equal(t, seq, tx.Seq)
		assert.Equal(t, folded, tx.BalanceBefore)
		assert.GreaterOrEqual(t, tx.BalanceAfter, int64(0))
		folded += tx.Amount
	}
	assert.Equal(t, folded, m.balance(t, m.partner))

	audit, err := m.ledgerQ.VerifyLedger(ctx, m.partner.ID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent, audit.Problem)
	assert.Equal(t, folded, audit.Balance)
	assert.Equal(t, seq, audit.HeadSeq)
}
