package servicerequest

import (
	"roadside-marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidCommissionRate = errs.New("commission percent must be between 0 and 100")

// CommissionPolicy decides how much of a completed job's final amount the
// platform keeps.
type CommissionPolicy interface {
	Commission(finalAmount int64) int64
}

var hundred = decimal.NewFromInt(100)

type PercentageCommission struct {
	percent decimal.Decimal
}

func NewPercentageCommission(percent string) (*PercentageCommission, error) {
	p, err := decimal.NewFromString(percent)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCommissionRate)
	}
	if p.IsNegative() || p.GreaterThan(hundred) {
		return nil, ErrInvalidCommissionRate
	}
	return &PercentageCommission{percent: p}, nil
}

// Commission rounds half away from zero to whole credits.
func (c *PercentageCommission) Commission(finalAmount int64) int64 {
	return decimal.NewFromInt(finalAmount).
		Mul(c.percent).
		Div(hundred).
		Round(0).
		IntPart()
}

func (c *PercentageCommission) Percent() string {
	return c.percent.String()
}

// Earning is the partner's share of finalAmount under policy.
func Earning(policy CommissionPolicy, finalAmount int64) (earning, commission int64) {
	commission = policy.Commission(finalAmount)
	return finalAmount - commission, commission
}
