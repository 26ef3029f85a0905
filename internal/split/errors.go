package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount           = errors.New("the base amount must not be negative and the tax percentage must be between 0 and 100")
	ErrInvalidSplitMethod      = errors.New("the split method must be one of equal, amount, percentage or shares")
	ErrInvalidSplitPercentages = errors.New("the percentages of all participating members must sum up to 100")
	ErrInvalidSplitShares      = errors.New("the shares of all participating members must sum up to more than zero")
	ErrSplitValueMismatch      = errors.New("the split value does not match the split method")
	ErrDuplicateMember         = errors.New("a member can only be part of a split once")
	ErrMemberHasPayments       = errors.New("a member that already paid cannot be removed from the split or stop participating")
	ErrOwedBelowPaid           = errors.New("the change would lower the owed amount of a member below what they already paid")
	ErrInvalidPaymentAmount    = errors.New("the payment amount must be larger than zero and must not exceed the remaining balance")
	ErrSplitNotMutable         = errors.New("the split is completed or cancelled and cannot be changed anymore")
	ErrInvalidTransition       = errors.New("the split cannot transition to the requested status")
	ErrMemberNotFound          = errors.New("there is no allocation for this member in the split")
)

// PaymentAmountError is returned when a payment is outside of the valid range
// or is not a whole number of cents. A valid payment is larger than Min and at most Max.
type PaymentAmountError struct {
	Amount decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
}

func (e *PaymentAmountError) Error() string {
	if !e.Amount.Equal(e.Amount.Truncate(2)) {
		return fmt.Sprintf("%s: %s has more than two decimal places", ErrInvalidPaymentAmount, e.Amount.String())
	}

	return fmt.Sprintf("%s: %s is not in the range (%s, %s]", ErrInvalidPaymentAmount, e.Amount.String(), e.Min.StringFixed(2), e.Max.StringFixed(2))
}

func (e *PaymentAmountError) Is(target error) bool {
	return target == ErrInvalidPaymentAmount
}
