package split

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType classifies an entry in the activity log of a split.
//
// swagger:enum ActivityType
type ActivityType string

const (
	ActivityCreated   ActivityType = "created"
	ActivityModified  ActivityType = "modified"
	ActivityPayment   ActivityType = "payment"
	ActivityCompleted ActivityType = "completed"
	ActivityCancelled ActivityType = "cancelled"
)

// Activity is one entry of the append-only log of a split.
type Activity struct {
	Type        ActivityType
	At          time.Time
	Actor       string
	MemberID    string          // Only set for payments
	Amount      decimal.Decimal // Only set for payments
	Description string
}

func (s *Split) record(t ActivityType, actor string, at time.Time, format string, args ...any) {
	s.Activity = append(s.Activity, Activity{
		Type:        t,
		At:          at,
		Actor:       actor,
		Description: fmt.Sprintf(format, args...),
	})
}

func (s *Split) recordPayment(actor string, at time.Time, a Allocation, amount decimal.Decimal) {
	s.Activity = append(s.Activity, Activity{
		Type:        ActivityPayment,
		At:          at,
		Actor:       actor,
		MemberID:    a.MemberID,
		Amount:      amount,
		Description: fmt.Sprintf("%s paid %s, %s of %s paid", a.MemberID, amount.StringFixed(2), a.Paid.StringFixed(2), a.Owed.StringFixed(2)),
	})
}

func joinFields(fields []string) string {
	if len(fields) == 0 {
		return "nothing"
	}
	return strings.Join(fields, ", ")
}
