package ledger

import (
	"fmt"

	"roadside-marketplace/internal/pkg/errs"
)

var ErrBrokenChain = errs.New("ledger chain is inconsistent")

// Fold sums the amounts of a partner's log. The balance of a partner is
// defined as this value.
func Fold(amounts ...int64) int64 {
	var sum int64
	for _, a := range amounts {
		sum += a
	}
	return sum
}

// Link is the subset of a transaction needed to audit the chain.
type Link struct {
	Seq           int64
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
}

// VerifyChain checks a partner's log in sequence order: dense sequence
// numbers starting at 1, after = before + amount on every row, each row
// starting where the previous one ended, and no negative balance. It
// returns the folded balance.
func VerifyChain(links []Link) (int64, error) {
	var prevAfter int64
	for i, l := range links {
		want := int64(i + 1)
		if l.Seq != want {
			return 0, errs.Wrap(ErrBrokenChain, fmt.Sprintf("expected seq %d, got %d", want, l.Seq))
		}
		if l.BalanceBefore != prevAfter {
			return 0, errs.Wrap(ErrBrokenChain, fmt.Sprintf("seq %d starts at %d, previous ended at %d", l.Seq, l.BalanceBefore, prevAfter))
		}
		if l.BalanceAfter != l.BalanceBefore+l.Amount {
			return 0, errs.Wrap(ErrBrokenChain, fmt.Sprintf("seq %d: %d + %d != %d", l.Seq, l.BalanceBefore, l.Amount, l.BalanceAfter))
		}
		if l.BalanceAfter < 0 {
			return 0, errs.Wrap(ErrBrokenChain, fmt.Sprintf("seq %d leaves a negative balance", l.Seq))
		}
		prevAfter = l.BalanceAfter
	}
	return prevAfter, nil
}
