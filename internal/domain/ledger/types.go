package ledger

type Type string

const (
	TypeEarning    Type = "earning"
	TypeWithdrawal Type = "withdrawal"
	TypeAdjustment Type = "adjustment"
	TypeRefund     Type = "refund"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeEarning, TypeWithdrawal, TypeAdjustment, TypeRefund:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// checkSign enforces the direction each transaction type may move a balance.
func (t Type) checkSign(amount int64) error {
	switch t {
	case TypeEarning, TypeRefund:
		if amount <= 0 {
			return ErrAmountMustBePositive
		}
	case TypeWithdrawal:
		if amount >= 0 {
			return ErrAmountMustBeNegative
		}
	case TypeAdjustment:
		if amount == 0 {
			return ErrZeroAmount
		}
	default:
		return ErrInvalidType
	}
	return nil
}
