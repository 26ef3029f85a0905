// Package split divides the total of a shared expense between the members of a
// split and tracks the payments members make against their share.
//
// All functions in this package are pure: they never modify the Split passed in
// and either return a fully updated copy or an error.
package split

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Method is the policy that decides how the total amount of a split is divided.
//
// swagger:enum Method
type Method string

const (
	MethodEqual      Method = "equal"
	MethodAmount     Method = "amount"
	MethodPercentage Method = "percentage"
	MethodShares     Method = "shares"
)

// Methods lists all supported split methods.
var Methods = []Method{MethodEqual, MethodAmount, MethodPercentage, MethodShares}

func (m Method) Valid() bool {
	return slices.Contains(Methods, m)
}

// Status is the lifecycle state of a split.
//
// swagger:enum Status
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists all split states.
var Statuses = []Status{StatusDraft, StatusActive, StatusCompleted, StatusCancelled}

// Terminal reports whether no further mutation is allowed in this state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentStatus is the settlement state of a single allocation.
//
// swagger:enum PaymentStatus
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Split is one shared expense and its allocation across members.
type Split struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     uint // Maintained by the store for optimistic locking
	GroupID     string
	Description string
	Currency    string
	PaidBy      string

	BaseAmount    decimal.Decimal
	TaxPercentage decimal.Decimal
	TaxAmount     decimal.Decimal // Derived by Compute
	TotalAmount   decimal.Decimal // Derived by Compute

	Method      Method
	Status      Status
	Allocations []Allocation
	Activity    []Activity
	SettledAt   *time.Time
	CancelledAt *time.Time
}

// Allocation is a single member's stake in a split.
type Allocation struct {
	MemberID      string
	MemberName    string
	Participating bool
	Value         Value // Interpreted according to the split's Method. nil means the method's default

	Owed          decimal.Decimal // Derived by Compute, rounded to cents
	Paid          decimal.Decimal
	PaymentStatus PaymentStatus
	PaidAt        *time.Time
}

// Remaining returns the amount the member still has to pay. It is never negative.
func (a Allocation) Remaining() decimal.Decimal {
	r := a.Owed.Sub(a.Paid)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Allocation returns the allocation of the member and whether it exists.
func (s Split) Allocation(memberID string) (Allocation, bool) {
	i := s.memberIndex(memberID)
	if i < 0 {
		return Allocation{}, false
	}
	return s.Allocations[i], true
}

// Participants returns the number of participating members.
func (s Split) Participants() int {
	n := 0
	for _, a := range s.Allocations {
		if a.Participating {
			n++
		}
	}
	return n
}

// Outstanding returns the sum of all remaining balances of participating members.
func (s Split) Outstanding() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range s.Allocations {
		if a.Participating {
			sum = sum.Add(a.Remaining())
		}
	}
	return sum
}

func (s Split) memberIndex(memberID string) int {
	return slices.IndexFunc(s.Allocations, func(a Allocation) bool {
		return a.MemberID == memberID
	})
}

// clone returns a copy of the split that shares no slices with the original.
func (s Split) clone() Split {
	c := s
	c.Allocations = slices.Clone(s.Allocations)
	c.Activity = slices.Clone(s.Activity)
	return c
}
