package split

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ApplyPayment records a payment of amount by the member.
//
// The amount must be larger than zero, a whole number of cents and must not
// exceed the member's remaining balance. When the payment settles the last open allocation of an
// active split, the split is completed.
func ApplyPayment(s Split, memberID string, amount decimal.Decimal, actor string, at time.Time) (Split, error) {
	if s.Status.Terminal() {
		return Split{}, ErrSplitNotMutable
	}

	i := s.memberIndex(memberID)
	if i < 0 {
		return Split{}, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}

	remaining := s.Allocations[i].Remaining()
	if !amount.IsPositive() || amount.GreaterThan(remaining) || !amount.Equal(amount.Truncate(2)) {
		return Split{}, &PaymentAmountError{
			Amount: amount,
			Min:    decimal.Zero,
			Max:    remaining,
		}
	}

	c := s.clone()
	a := &c.Allocations[i]
	a.Paid = a.Paid.Add(amount)
	a.PaidAt = &at
	a.PaymentStatus = paymentStatus(a.Paid, a.Owed)

	c.recordPayment(actor, at, *a, amount)
	c.complete(actor, at)

	return c, nil
}

// Activate moves a draft split to active.
func Activate(s Split, actor string, at time.Time) (Split, error) {
	if s.Status.Terminal() {
		return Split{}, ErrSplitNotMutable
	}

	if s.Status != StatusDraft {
		return Split{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.Status, StatusActive)
	}

	c := s.clone()
	c.Status = StatusActive
	c.record(ActivityModified, actor, at, "split activated, %s outstanding", c.Outstanding().StringFixed(2))

	// Payments recorded while in draft may already have settled everything
	c.complete(actor, at)

	return c, nil
}

// Cancel cancels a draft or active split. Cancelled splits cannot be changed anymore.
func Cancel(s Split, actor string, at time.Time) (Split, error) {
	if s.Status.Terminal() {
		return Split{}, ErrSplitNotMutable
	}

	c := s.clone()
	c.Status = StatusCancelled
	c.CancelledAt = &at
	c.record(ActivityCancelled, actor, at, "split cancelled with %s outstanding", c.Outstanding().StringFixed(2))

	return c, nil
}

// complete transitions an active split where every participating member has
// paid to completed. It reports whether the transition happened.
func (s *Split) complete(actor string, at time.Time) bool {
	if s.Status != StatusActive {
		return false
	}

	participants := 0
	for _, a := range s.Allocations {
		if !a.Participating {
			continue
		}

		participants++
		if a.PaymentStatus != PaymentPaid {
			return false
		}
	}

	if participants == 0 {
		return false
	}

	s.Status = StatusCompleted
	s.SettledAt = &at
	s.record(ActivityCompleted, actor, at, "all %d participants paid, split settled", participants)

	return true
}
