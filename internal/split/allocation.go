package split

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred             = decimal.NewFromInt(100)
	percentageTolerance = decimal.NewFromFloat(0.01)
)

// Compute derives the tax amount, the total amount and the owed amount of every
// allocation from the base amount, the tax percentage, the method and the split values.
//
// Every owed amount is rounded to cents independently. The rounding difference is
// not redistributed, so the sum of owed amounts can differ from the total by up to
// half a cent per participant.
//
// Compute is idempotent. It has to run whenever one of its inputs changes.
func Compute(s Split) (Split, error) {
	if s.Status.Terminal() {
		return Split{}, ErrSplitNotMutable
	}

	if s.BaseAmount.IsNegative() {
		return Split{}, fmt.Errorf("%w: base amount is %s", ErrInvalidAmount, s.BaseAmount)
	}

	if s.TaxPercentage.IsNegative() || s.TaxPercentage.GreaterThan(hundred) {
		return Split{}, fmt.Errorf("%w: tax percentage is %s", ErrInvalidAmount, s.TaxPercentage)
	}

	if !s.Method.Valid() {
		return Split{}, fmt.Errorf("%w, got '%s'", ErrInvalidSplitMethod, s.Method)
	}

	c := s.clone()
	seen := make(map[string]bool, len(c.Allocations))
	for i, a := range c.Allocations {
		if seen[a.MemberID] {
			return Split{}, fmt.Errorf("%w: %s", ErrDuplicateMember, a.MemberID)
		}
		seen[a.MemberID] = true

		v, err := normalize(c.Method, a.Value)
		if err != nil {
			return Split{}, fmt.Errorf("member %s: %w", a.MemberID, err)
		}
		c.Allocations[i].Value = v
	}

	c.TaxAmount = c.BaseAmount.Mul(c.TaxPercentage).Div(hundred)
	c.TotalAmount = c.BaseAmount.Add(c.TaxAmount)

	owed, err := allocate(c.Method, c.TotalAmount, c.Allocations)
	if err != nil {
		return Split{}, err
	}

	for i := range c.Allocations {
		a := &c.Allocations[i]
		a.Owed = owed[i]

		if a.PaymentStatus == "" {
			a.PaymentStatus = PaymentPending
		}

		// Paid stays paid even if the owed amount went up
		if a.Participating && a.PaymentStatus != PaymentPaid {
			a.PaymentStatus = paymentStatus(a.Paid, a.Owed)
		}
	}

	return c, nil
}

// allocate returns the rounded owed amount for every allocation, in order.
// Allocations of members that do not participate owe nothing.
func allocate(m Method, total decimal.Decimal, allocations []Allocation) ([]decimal.Decimal, error) {
	owed := make([]decimal.Decimal, len(allocations))

	participants := 0
	for _, a := range allocations {
		if a.Participating {
			participants++
		}
	}

	if participants == 0 {
		return owed, nil
	}

	switch m {
	case MethodEqual:
		share := total.Div(decimal.NewFromInt(int64(participants)))
		for i, a := range allocations {
			if a.Participating {
				owed[i] = share
			}
		}

	case MethodAmount:
		for i, a := range allocations {
			if a.Participating {
				owed[i] = a.Value.(Amount).Amount
			}
		}

	case MethodPercentage:
		sum := decimal.Zero
		for _, a := range allocations {
			if a.Participating {
				sum = sum.Add(a.Value.(Percentage).Percentage)
			}
		}

		if sum.Sub(hundred).Abs().GreaterThan(percentageTolerance) {
			return nil, fmt.Errorf("%w, got %s", ErrInvalidSplitPercentages, sum)
		}

		for i, a := range allocations {
			if a.Participating {
				owed[i] = total.Mul(a.Value.(Percentage).Percentage).Div(hundred)
			}
		}

	case MethodShares:
		totalShares := decimal.Zero
		for _, a := range allocations {
			if a.Participating {
				totalShares = totalShares.Add(a.Value.(Shares).Shares)
			}
		}

		if !totalShares.IsPositive() {
			return nil, fmt.Errorf("%w, got %s", ErrInvalidSplitShares, totalShares)
		}

		for i, a := range allocations {
			if a.Participating {
				owed[i] = total.Mul(a.Value.(Shares).Shares).Div(totalShares)
			}
		}
	}

	for i := range owed {
		owed[i] = owed[i].Round(2)
	}

	return owed, nil
}

// paymentStatus derives the payment status from the paid and the owed amount.
func paymentStatus(paid, owed decimal.Decimal) PaymentStatus {
	if paid.GreaterThanOrEqual(owed) {
		return PaymentPaid
	}

	if paid.IsPositive() {
		return PaymentPartial
	}

	return PaymentPending
}

// Member is the caller supplied input for one allocation.
type Member struct {
	ID            string
	Name          string
	Participating bool
	Value         Value
}

// Draft holds everything needed to create a split.
type Draft struct {
	GroupID       string
	Description   string
	Currency      string
	PaidBy        string
	BaseAmount    decimal.Decimal
	TaxPercentage decimal.Decimal
	Method        Method
	Members       []Member
	Activate      bool // Create the split as active instead of draft
}

// New creates a split from the draft and computes its allocation.
func New(d Draft, actor string, at time.Time) (Split, error) {
	s := Split{
		GroupID:       d.GroupID,
		Description:   d.Description,
		Currency:      d.Currency,
		PaidBy:        d.PaidBy,
		BaseAmount:    d.BaseAmount,
		TaxPercentage: d.TaxPercentage,
		Method:        d.Method,
		Status:        StatusDraft,
		Allocations:   make([]Allocation, 0, len(d.Members)),
	}

	if d.Activate {
		s.Status = StatusActive
	}

	for _, m := range d.Members {
		s.Allocations = append(s.Allocations, Allocation{
			MemberID:      m.ID,
			MemberName:    m.Name,
			Participating: m.Participating,
			Value:         m.Value,
			PaymentStatus: PaymentPending,
		})
	}

	s, err := Compute(s)
	if err != nil {
		return Split{}, err
	}

	s.record(ActivityCreated, actor, at, "%s split of %s created with %d participants", s.Method, s.TotalAmount.StringFixed(2), s.Participants())
	s.complete(actor, at)

	return s, nil
}

// Revision lists changes to a split. nil fields are left unchanged.
//
// Members, if set, is the complete new member list. Members that are kept
// retain their payments.
type Revision struct {
	Description   *string
	Currency      *string
	BaseAmount    *decimal.Decimal
	TaxPercentage *decimal.Decimal
	Method        *Method
	Members       []Member
}

// Revise applies the revision and recomputes the full allocation.
//
// A revision that leaves a member owing less than they already paid is rejected
// with ErrOwedBelowPaid.
func Revise(s Split, r Revision, actor string, at time.Time) (Split, error) {
	if s.Status.Terminal() {
		return Split{}, ErrSplitNotMutable
	}

	c := s.clone()
	var changed []string

	if r.Description != nil && *r.Description != c.Description {
		c.Description = *r.Description
		changed = append(changed, "description")
	}

	if r.Currency != nil && *r.Currency != c.Currency {
		c.Currency = *r.Currency
		changed = append(changed, "currency")
	}

	if r.BaseAmount != nil && !r.BaseAmount.Equal(c.BaseAmount) {
		c.BaseAmount = *r.BaseAmount
		changed = append(changed, "base amount")
	}

	if r.TaxPercentage != nil && !r.TaxPercentage.Equal(c.TaxPercentage) {
		c.TaxPercentage = *r.TaxPercentage
		changed = append(changed, "tax percentage")
	}

	if r.Method != nil && *r.Method != c.Method {
		c.Method = *r.Method
		changed = append(changed, "method")

		// Values of the old method cannot be interpreted anymore
		if r.Members == nil {
			for i := range c.Allocations {
				c.Allocations[i].Value = nil
			}
		}
	}

	if r.Members != nil {
		allocations, err := reviseMembers(c.Allocations, r.Members)
		if err != nil {
			return Split{}, err
		}
		c.Allocations = allocations
		changed = append(changed, "members")
	}

	c, err := Compute(c)
	if err != nil {
		return Split{}, err
	}

	for _, a := range c.Allocations {
		if a.Paid.GreaterThan(a.Owed) {
			return Split{}, fmt.Errorf("%w: %s paid %s, but would owe %s", ErrOwedBelowPaid, a.MemberID, a.Paid.StringFixed(2), a.Owed.StringFixed(2))
		}
	}

	c.record(ActivityModified, actor, at, "changed %s, %s owed in total", joinFields(changed), c.TotalAmount.StringFixed(2))
	c.complete(actor, at)

	return c, nil
}

// reviseMembers builds the new allocation list, carrying over the payments of
// members that are kept.
func reviseMembers(current []Allocation, members []Member) ([]Allocation, error) {
	previous := make(map[string]Allocation, len(current))
	for _, a := range current {
		previous[a.MemberID] = a
	}

	allocations := make([]Allocation, 0, len(members))
	for _, m := range members {
		a, ok := previous[m.ID]
		if !ok {
			a = Allocation{MemberID: m.ID, PaymentStatus: PaymentPending}
		}
		delete(previous, m.ID)

		if ok && a.Participating && !m.Participating && a.Paid.IsPositive() {
			return nil, fmt.Errorf("%w: %s", ErrMemberHasPayments, m.ID)
		}

		a.MemberName = m.Name
		a.Participating = m.Participating
		a.Value = m.Value
		allocations = append(allocations, a)
	}

	for id, a := range previous {
		if a.Paid.IsPositive() {
			return nil, fmt.Errorf("%w: %s", ErrMemberHasPayments, id)
		}
	}

	return allocations, nil
}
