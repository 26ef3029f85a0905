package split

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Value is the raw input a member supplied for their share.
// Exactly one implementation exists per Method.
type Value interface {
	Method() Method
}

// Equal carries no input, the total is divided evenly.
type Equal struct{}

// Amount is a fixed amount the member owes.
type Amount struct {
	Amount decimal.Decimal
}

// Percentage is the member's percentage of the total.
type Percentage struct {
	Percentage decimal.Decimal
}

// Shares is the member's weight relative to the sum of all shares.
type Shares struct {
	Shares decimal.Decimal
}

func (Equal) Method() Method      { return MethodEqual }
func (Amount) Method() Method     { return MethodAmount }
func (Percentage) Method() Method { return MethodPercentage }
func (Shares) Method() Method     { return MethodShares }

// DefaultValue returns the value used for a member that did not supply one.
func DefaultValue(m Method) Value {
	switch m {
	case MethodAmount:
		return Amount{Amount: decimal.Zero}
	case MethodPercentage:
		return Percentage{Percentage: decimal.Zero}
	case MethodShares:
		return Shares{Shares: decimal.NewFromInt(1)}
	default:
		return Equal{}
	}
}

// normalize resolves defaults and rejects values that cannot be used with
// the method. Zero shares count as one share.
func normalize(m Method, v Value) (Value, error) {
	if v == nil {
		return DefaultValue(m), nil
	}

	if v.Method() != m {
		return nil, fmt.Errorf("%w: got a %s value for a %s split", ErrSplitValueMismatch, v.Method(), m)
	}

	switch val := v.(type) {
	case Amount:
		if val.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: member amount %s is negative", ErrInvalidAmount, val.Amount)
		}
	case Percentage:
		if val.Percentage.IsNegative() {
			return nil, fmt.Errorf("%w: percentage %s is negative", ErrInvalidSplitPercentages, val.Percentage)
		}
	case Shares:
		if val.Shares.IsNegative() {
			return nil, fmt.Errorf("%w: shares %s are negative", ErrInvalidSplitShares, val.Shares)
		}
		if val.Shares.IsZero() {
			return DefaultValue(MethodShares), nil
		}
	}

	return v, nil
}
