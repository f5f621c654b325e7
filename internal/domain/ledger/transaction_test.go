//go:build unit

package ledger_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"roadside-marketplace/internal/domain/ledger"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func entry(partnerID uuid.UUID, typ ledger.Type, amount int64) ledger.Entry {
	return ledger.Entry{PartnerID: partnerID, Type: typ, Amount: amount, Description: "test movement"}
}

func TestEntryValidate(t *testing.T) {
	pid := uuid.New()

	tests := []struct {
		name  string
		entry ledger.Entry
		errIs error
	}{
		{name: "earning positive", entry: entry(pid, ledger.TypeEarning, 100)},
		{name: "refund positive", entry: entry(pid, ledger.TypeRefund, 1)},
		{name: "withdrawal negative", entry: entry(pid, ledger.TypeWithdrawal, -50)},
		{name: "adjustment negative", entry: entry(pid, ledger.TypeAdjustment, -3)},
		{name: "adjustment positive", entry: entry(pid, ledger.TypeAdjustment, 3)},
		{name: "earning zero", entry: entry(pid, ledger.TypeEarning, 0), errIs: ledger.ErrAmountMustBePositive},
		{name: "earning negative", entry: entry(pid, ledger.TypeEarning, -1), errIs: ledger.ErrAmountMustBePositive},
		{name: "refund negative", entry: entry(pid, ledger.TypeRefund, -1), errIs: ledger.ErrAmountMustBePositive},
		{name: "withdrawal positive", entry: entry(pid, ledger.TypeWithdrawal, 10), errIs: ledger.ErrAmountMustBeNegative},
		{name: "adjustment zero", entry: entry(pid, ledger.TypeAdjustment, 0), errIs: ledger.ErrZeroAmount},
		{name: "unknown type", entry: entry(pid, ledger.Type("bonus"), 10), errIs: ledger.ErrInvalidType},
		{name: "missing partner", entry: entry(uuid.Nil, ledger.TypeEarning, 10), errIs: ledger.ErrMissingPartner},
		{
			name:  "blank description",
			entry: ledger.Entry{PartnerID: pid, Type: ledger.TypeEarning, Amount: 10, Description: "  "},
			errIs: ledger.ErrEmptyDescription,
		},
		{
			name:  "description too long",
			entry: ledger.Entry{PartnerID: pid, Type: ledger.TypeEarning, Amount: 10, Description: strings.Repeat("x", ledger.MaxDescriptionLength+1)},
			errIs: ledger.ErrDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
			kind, ok := errs.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, errs.KindValidation, kind)
		})
	}
}

func TestHeadAppend(t *testing.T) {
	pid := uuid.New()

	t.Run("first transaction starts the chain", func(t *testing.T) {
		tx, head, err := ledger.Head{}.Append(entry(pid, ledger.TypeEarning, 100), now)

		require.NoError(t, err)
		assert.Equal(t, int64(1), tx.Seq())
		assert.Equal(t, int64(0), tx.BalanceBefore())
		assert.Equal(t, int64(100), tx.BalanceAfter())
		assert.Equal(t, now, tx.CreatedAt())
		assert.Equal(t, ledger.Head{PartnerID: pid, Seq: 1, Balance: 100}, head)
	})

	t.Run("chains onto the previous balance", func(t *testing.T) {
		head := ledger.Head{PartnerID: pid, Seq: 4, Balance: 70}

		tx, next, err := head.Append(entry(pid, ledger.TypeWithdrawal, -30), now)

		require.NoError(t, err)
		assert.Equal(t, int64(5), tx.Seq())
		assert.Equal(t, int64(70), tx.BalanceBefore())
		assert.Equal(t, int64(40), tx.BalanceAfter())
		assert.Equal(t, tx.BalanceBefore()+tx.Amount(), tx.BalanceAfter())
		assert.Equal(t, ledger.Head{PartnerID: pid, Seq: 5, Balance: 40}, next)
	})

	t.Run("debit may drain to exactly zero", func(t *testing.T) {
		head := ledger.Head{PartnerID: pid, Seq: 1, Balance: 30}

		tx, next, err := head.Append(entry(pid, ledger.TypeAdjustment, -30), now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), tx.BalanceAfter())
		assert.Equal(t, int64(0), next.Balance)
	})

	t.Run("debit beyond balance is rejected and head is unchanged", func(t *testing.T) {
		head := ledger.Head{PartnerID: pid, Seq: 2, Balance: 30}

		tx, next, err := head.Append(entry(pid, ledger.TypeWithdrawal, -31), now)

		require.ErrorIs(t, err, ledger.ErrInsufficientBalance)
		assert.True(t, errs.IsKind(err, errs.KindInsufficientBalance))
		assert.Nil(t, tx)
		assert.Equal(t, head, next)
	})

	t.Run("credit that would overflow the balance is rejected", func(t *testing.T) {
		head := ledger.Head{PartnerID: pid, Seq: 3, Balance: 5}

		tx, next, err := head.Append(entry(pid, ledger.TypeAdjustment, math.MaxInt64), now)

		require.ErrorIs(t, err, ledger.ErrAmountOutOfRange)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Nil(t, tx)
		assert.Equal(t, head, next)
	})

	t.Run("credit up to the largest balance is accepted", func(t *testing.T) {
		head := ledger.Head{PartnerID: pid, Seq: 3, Balance: 5}

		tx, _, err := head.Append(entry(pid, ledger.TypeRefund, math.MaxInt64-5), now)

		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), tx.BalanceAfter())
	})

	t.Run("head of another partner is rejected", func(t *testing.T) {
		head := ledger.Head{PartnerID: uuid.New(), Seq: 1, Balance: 10}

		_, _, err := head.Append(entry(pid, ledger.TypeEarning, 5), now)

		require.ErrorIs(t, err, ledger.ErrMissingPartner)
	})

	t.Run("description is trimmed", func(t *testing.T) {
		e := entry(pid, ledger.TypeEarning, 5)
		e.Description = "  job 42  "

		tx, _, err := ledger.Head{}.Append(e, now)

		require.NoError(t, err)
		assert.Equal(t, "job 42", tx.Description())
	})
}

func TestAppendedLogFoldsToHeadBalance(t *testing.T) {
	pid := uuid.New()
	amounts := []int64{100, -20, 5, -85, 40, 12, -52}

	var (
		head  ledger.Head
		links []ledger.Link
		seen  []int64
	)
	for _, a := range amounts {
		typ := ledger.TypeAdjustment
		if a > 0 {
			typ = ledger.TypeEarning
		}
		tx, next, err := head.Append(entry(pid, typ, a), now)
		require.NoError(t, err)
		require.GreaterOrEqual(t, tx.BalanceAfter(), int64(0))
		head = next
		seen = append(seen, tx.Amount())
		links = append(links, ledger.Link{
			Seq:           tx.Seq(),
			Amount:        tx.Amount(),
			BalanceBefore: tx.BalanceBefore(),
			BalanceAfter:  tx.BalanceAfter(),
		})
	}

	assert.Equal(t, ledger.Fold(seen...), head.Balance)

	balance, err := ledger.VerifyChain(links)
	require.NoError(t, err)
	assert.Equal(t, head.Balance, balance)
}

func TestVerifyChain(t *testing.T) {
	tests := []struct {
		name    string
		links   []ledger.Link
		want    int64
		wantErr bool
	}{
		{name: "empty log", links: nil, want: 0},
		{
			name: "consistent log",
			links: []ledger.Link{
				{Seq: 1, Amount: 10, BalanceBefore: 0, BalanceAfter: 10},
				{Seq: 2, Amount: -4, BalanceBefore: 10, BalanceAfter: 6},
			},
			want: 6,
		},
		{
			name: "gap in sequence",
			links: []ledger.Link{
				{Seq: 1, Amount: 10, BalanceBefore: 0, BalanceAfter: 10},
				{Seq: 3, Amount: -4, BalanceBefore: 10, BalanceAfter: 6},
			},
			wantErr: true,
		},
		{
			name: "row does not start where previous ended",
			links: []ledger.Link{
				{Seq: 1, Amount: 10, BalanceBefore: 0, BalanceAfter: 10},
				{Seq: 2, Amount: -4, BalanceBefore: 9, BalanceAfter: 5},
			},
			wantErr: true,
		},
		{
			name:    "arithmetic mismatch",
			links:   []ledger.Link{{Seq: 1, Amount: 10, BalanceBefore: 0, BalanceAfter: 11}},
			wantErr: true,
		},
		{
			name:    "negative balance",
			links:   []ledger.Link{{Seq: 1, Amount: -1, BalanceBefore: 0, BalanceAfter: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.VerifyChain(tt.links)
			if tt.wantErr {
				require.ErrorIs(t, err, ledger.ErrBrokenChain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, int64(0), ledger.Fold())
	assert.Equal(t, int64(15), ledger.Fold(10, -5, 10))
}
