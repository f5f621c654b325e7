//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roadside-marketplace/internal/usecase/queries"
	readstoremock "roadside-marketplace/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func txView(partnerID uuid.UUID, seq, amount, before int64) *queries.TransactionView {
	return &queries.TransactionView{
		ID:            uuid.New(),
		PartnerID:     partnerID,
		Seq:           seq,
		Type:          "adjustment",
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  before + amount,
	}
}

func TestVerifyLedger(t *testing.T) {
	ctx := context.Background()
	partnerID := uuid.New()

	consistent := []*queries.TransactionView{
		txView(partnerID, 1, 10, 0),
		txView(partnerID, 2, -4, 10),
		txView(partnerID, 3, 5, 6),
	}
	broken := []*queries.TransactionView{
		txView(partnerID, 1, 10, 0),
		txView(partnerID, 2, -4, 9),
	}

	tests := []struct {
		name           string
		head           *queries.LedgerHeadView
		rows           []*queries.TransactionView
		wantConsistent bool
		wantBalance    int64
	}{
		{
			name:           "consistent log",
			head:           &queries.LedgerHeadView{PartnerID: partnerID, Seq: 3, Balance: 11},
			rows:           consistent,
			wantConsistent: true,
			wantBalance:    11,
		},
		{
			name:        "broken chain",
			head:        &queries.LedgerHeadView{PartnerID: partnerID, Seq: 2, Balance: 5},
			rows:        broken,
			wantBalance: 6,
		},
		{
			name:        "head out of step",
			head:        &queries.LedgerHeadView{PartnerID: partnerID, Seq: 2, Balance: 6},
			rows:        consistent,
			wantBalance: 11,
		},
		{
			name:           "empty log",
			head:           &queries.LedgerHeadView{PartnerID: partnerID},
			wantConsistent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := readstoremock.NewMockLedgerReadStore(ctrl)
			store.EXPECT().FindHead(ctx, partnerID).Return(tt.head, nil).MinTimes(1)
			store.EXPECT().FindTransactions(ctx, partnerID, nil, int64(0), int32(queries.MaxListLimit)).Return(tt.rows, nil)

			audit, err := queries.NewLedgerQueries(store).VerifyLedger(ctx, partnerID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantConsistent, audit.Consistent, audit.Problem)
			assert.Equal(t, tt.wantBalance, audit.Balance)
			assert.Equal(t, len(tt.rows), audit.Transactions)
			if !tt.wantConsistent {
				assert.NotEmpty(t, audit.Problem)
			}
		})
	}
}

func TestVerifyLedgerIgnoresConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	partnerID := uuid.New()
	rows := []*queries.TransactionView{
		txView(partnerID, 1, 10, 0),
		txView(partnerID, 2, -4, 10),
		txView(partnerID, 3, 5, 6),
	}

	ctrl := gomock.NewController(t)
	store := readstoremock.NewMockLedgerReadStore(ctrl)
	gomock.InOrder(
		store.EXPECT().FindHead(ctx, partnerID).Return(&queries.LedgerHeadView{PartnerID: partnerID, Seq: 2, Balance: 6}, nil),
		store.EXPECT().FindTransactions(ctx, partnerID, nil, int64(0), int32(queries.MaxListLimit)).Return(rows, nil),
		store.EXPECT().FindHead(ctx, partnerID).Return(&queries.LedgerHeadView{PartnerID: partnerID, Seq: 3, Balance: 11}, nil),
	)

	audit, err := queries.NewLedgerQueries(store).VerifyLedger(ctx, partnerID)

	require.NoError(t, err)
	assert.True(t, audit.Consistent, audit.Problem)
	assert.Equal(t, 2, audit.Transactions)
	assert.Equal(t, int64(6), audit.Balance)
	assert.Equal(t, int64(2), audit.HeadSeq)
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	partnerID := uuid.New()

	t.Run("pages by sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := readstoremock.NewMockLedgerReadStore(ctrl)
		rows := []*queries.TransactionView{
			txView(partnerID, 1, 10, 0),
			txView(partnerID, 2, 1, 10),
			txView(partnerID, 3, 1, 11),
		}
		store.EXPECT().FindTransactions(ctx, partnerID, nil, int64(0), int32(3)).Return(rows, nil)
		store.EXPECT().FindTransactions(ctx, partnerID, nil, int64(2), int32(3)).Return(rows[2:], nil)
		q := queries.NewLedgerQueries(store)

		first, next, err := q.ListTransactions(ctx, partnerID, queries.TransactionFilter{}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, first, 2)
		require.NotNil(t, next)

		second, next, err := q.ListTransactions(ctx, partnerID, queries.TransactionFilter{}, next, 2)
		require.NoError(t, err)
		assert.Len(t, second, 1)
		assert.Nil(t, next)
	})

	t.Run("rejects unknown type filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := readstoremock.NewMockLedgerReadStore(ctrl)
		bonus := "bonus"

		_, _, err := queries.NewLedgerQueries(store).ListTransactions(ctx, partnerID, queries.TransactionFilter{Type: &bonus}, nil, 0)

		require.Error(t, err)
	})

	t.Run("rejects a time cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := readstoremock.NewMockLedgerReadStore(ctrl)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(time.Now(), partnerID)}

		_, _, err := queries.NewLedgerQueries(store).ListTransactions(ctx, partnerID, queries.TransactionFilter{}, cursor, 0)

		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
