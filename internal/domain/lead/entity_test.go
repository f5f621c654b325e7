//go:build unit

package lead_test

import (
	"strings"
	"testing"
	"time"

	"roadside-marketplace/internal/domain/lead"
	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now      = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	customer = lead.CustomerInfo{Name: "Jane Driver", Phone: "+15550100", Location: "Highway 1, exit 12"}
)

func TestNewPurchase(t *testing.T) {
	p := lead.NewPurchase(uuid.New(), uuid.New(), now)

	assert.Equal(t, lead.StatusPending, p.Status())
	assert.Equal(t, lead.CreditCost, p.CreditCost())
	assert.IsType(t, lead.Pending{}, p.State())

	_, ok := p.CustomerInfo()
	assert.False(t, ok, "pending purchase must not expose customer info")
	_, ok = p.Resolution()
	assert.False(t, ok)
}

func TestApprove(t *testing.T) {
	t.Run("carries customer info and resolution", func(t *testing.T) {
		p := lead.NewPurchase(uuid.New(), uuid.New(), now)
		admin := uuid.New()

		err := p.Approve(customer, admin, "  verified  ", now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, lead.StatusApproved, p.Status())

		info, ok := p.CustomerInfo()
		require.True(t, ok)
		if diff := cmp.Diff(customer, info); diff != "" {
			t.Errorf("customer mismatch (-want +got):\n%s", diff)
		}

		res, ok := p.Resolution()
		require.True(t, ok)
		assert.Equal(t, lead.Resolution{ResolvedAt: now.Add(time.Hour), ResolvedBy: admin, Notes: "verified"}, res)
	})

	t.Run("requires name and location", func(t *testing.T) {
		cases := []lead.CustomerInfo{
			{Name: "", Phone: "1", Location: "x"},
			{Name: "Jane", Phone: "1", Location: "  "},
		}
		for _, info := range cases {
			p := lead.NewPurchase(uuid.New(), uuid.New(), now)
			err := p.Approve(info, uuid.New(), "", now)
			require.ErrorIs(t, err, lead.ErrIncompleteCustomer)
			assert.Equal(t, lead.StatusPending, p.Status())
		}
	})

	t.Run("notes too long", func(t *testing.T) {
		p := lead.NewPurchase(uuid.New(), uuid.New(), now)
		err := p.Approve(customer, uuid.New(), strings.Repeat("n", lead.MaxNotesLength+1), now)
		require.ErrorIs(t, err, lead.ErrNotesTooLong)
	})
}

func TestReject(t *testing.T) {
	p := lead.NewPurchase(uuid.New(), uuid.New(), now)

	require.NoError(t, p.Reject(uuid.New(), "duplicate", now))

	assert.Equal(t, lead.StatusRejected, p.Status())
	_, ok := p.CustomerInfo()
	assert.False(t, ok, "rejected purchase must not expose customer info")
	res, ok := p.Resolution()
	require.True(t, ok)
	assert.Equal(t, "duplicate", res.Notes)
}

func TestResolveOnlyOnce(t *testing.T) {
	tests := []struct {
		name  string
		first func(*lead.Purchase) error
	}{
		{name: "after approve", first: func(p *lead.Purchase) error { return p.Approve(customer, uuid.New(), "", now) }},
		{name: "after reject", first: func(p *lead.Purchase) error { return p.Reject(uuid.New(), "", now) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lead.NewPurchase(uuid.New(), uuid.New(), now)
			require.NoError(t, tt.first(p))
			before := p.State()

			errApprove := p.Approve(customer, uuid.New(), "", now)
			errReject := p.Reject(uuid.New(), "", now)

			require.ErrorIs(t, errApprove, lead.ErrLeadNotPending)
			require.ErrorIs(t, errReject, lead.ErrLeadNotPending)
			assert.True(t, errs.IsKind(errApprove, errs.KindStateConflict))
			assert.Equal(t, before, p.State())
		})
	}
}

func TestNewDecision(t *testing.T) {
	for _, s := range []string{"approve", "reject"} {
		d, err := lead.NewDecision(s)
		require.NoError(t, err)
		assert.Equal(t, lead.Decision(s), d)
	}

	_, err := lead.NewDecision("maybe")
	require.ErrorIs(t, err, lead.ErrInvalidDecision)
}
