package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/split-star/backend/internal/models"
	"github.com/split-star/backend/internal/split"
)

type MemberEditable struct {
	ID            string           `json:"id" example:"alice"`                                   // ID of the member. Opaque to the backend
	Name          string           `json:"name" example:"Alice"`                                 // Display name of the member
	Participating *bool            `json:"participating" example:"true" default:"true"`          // Does the member share the expense? Defaults to true
	Amount        *decimal.Decimal `json:"amount,omitempty" example:"12.5" minimum:"0"`          // Fixed amount owed. Only for the "amount" method
	Percentage    *decimal.Decimal `json:"percentage,omitempty" example:"25" minimum:"0"`        // Percentage of the total. Only for the "percentage" method
	Shares        *decimal.Decimal `json:"shares,omitempty" example:"2" minimum:"0" default:"1"` // Weight relative to all shares. Only for the "shares" method
}

// member returns the member for a split with the given method.
func (e MemberEditable) member(method split.Method) (split.Member, error) {
	if strings.TrimSpace(e.ID) == "" {
		return split.Member{}, errMemberIDMissing
	}

	m := split.Member{
		ID:            e.ID,
		Name:          e.Name,
		Participating: e.Participating == nil || *e.Participating,
	}

	var values []split.Value
	if e.Amount != nil {
		values = append(values, split.Amount{Amount: *e.Amount})
	}
	if e.Percentage != nil {
		values = append(values, split.Percentage{Percentage: *e.Percentage})
	}
	if e.Shares != nil {
		values = append(values, split.Shares{Shares: *e.Shares})
	}

	switch len(values) {
	case 0:
		if method == split.MethodEqual {
			m.Value = split.Equal{}
		}
	case 1:
		m.Value = values[0]
	default:
		return split.Member{}, fmt.Errorf("%w, member %s", errMemberValueAmbiguous, e.ID)
	}

	return m, nil
}

func toMembers(editables []MemberEditable, method split.Method) ([]split.Member, error) {
	members := make([]split.Member, 0, len(editables))
	for _, e := range editables {
		m, err := e.member(method)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

type SplitEditable struct {
	GroupID       string           `json:"groupId" example:"flat-42"`                                                               // ID of the group the split belongs to
	Description   string           `json:"description" example:"Weekly groceries" default:""`                                       // Description of the expense
	Currency      string           `json:"currency" example:"EUR" default:""`                                                       // ISO 4217 currency code
	PaidBy        string           `json:"paidBy" example:"alice" default:""`                                                       // ID of the member who paid the expense
	BaseAmount    decimal.Decimal  `json:"baseAmount" example:"84.2" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.01"` // Amount before tax
	TaxPercentage decimal.Decimal  `json:"taxPercentage" example:"19" minimum:"0" maximum:"100" default:"0"`                        // Tax in percent of the base amount
	Method        split.Method     `json:"method" example:"equal"`                                                                  // How the total is divided
	Status        split.Status     `json:"status" example:"active" default:"draft"`                                                 // Initial status. Must be draft or active
	Members       []MemberEditable `json:"members"`                                                                                 // Members of the split
}

// draft returns the draft for the API representation of the editable fields
func (editable SplitEditable) draft() (split.Draft, error) {
	if editable.Status != "" && editable.Status != split.StatusDraft && editable.Status != split.StatusActive {
		return split.Draft{}, fmt.Errorf("%w, got '%s'", errSplitStatusInvalid, editable.Status)
	}

	members, err := toMembers(editable.Members, editable.Method)
	if err != nil {
		return split.Draft{}, err
	}

	return split.Draft{
		GroupID:       editable.GroupID,
		Description:   editable.Description,
		Currency:      editable.Currency,
		PaidBy:        editable.PaidBy,
		BaseAmount:    editable.BaseAmount,
		TaxPercentage: editable.TaxPercentage,
		Method:        editable.Method,
		Members:       members,
		Activate:      editable.Status == split.StatusActive,
	}, nil
}

// SplitUpdate contains the fields that can be changed on an existing split.
// Only fields that are set are updated.
type SplitUpdate struct {
	Description   *string          `json:"description" example:"Weekly groceries"`
	Currency      *string          `json:"currency" example:"EUR"`
	BaseAmount    *decimal.Decimal `json:"baseAmount" example:"84.2"`
	TaxPercentage *decimal.Decimal `json:"taxPercentage" example:"19"`
	Method        *split.Method    `json:"method" example:"shares"`
	Members       []MemberEditable `json:"members"` // The complete new list of members. Members that are kept keep their payments
}

// revision returns the revision for a split that currently uses the given method.
func (update SplitUpdate) revision(current split.Method) (split.Revision, error) {
	method := current
	if update.Method != nil {
		method = *update.Method
	}

	r := split.Revision{
		Description:   update.Description,
		Currency:      update.Currency,
		BaseAmount:    update.BaseAmount,
		TaxPercentage: update.TaxPercentage,
		Method:        update.Method,
	}

	if update.Members != nil {
		members, err := toMembers(update.Members, method)
		if err != nil {
			return split.Revision{}, err
		}
		r.Members = members
	}

	return r, nil
}

type SplitLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/splits/5b0fd5bd-b0bb-4b7d-b0e1-3e2dba4fba08"`              // The split itself
	Activate string `json:"activate" example:"https://example.com/api/v1/splits/5b0fd5bd-b0bb-4b7d-b0e1-3e2dba4fba08/activate"` // Activates a draft split
	Payments string `json:"payments" example:"https://example.com/api/v1/splits/5b0fd5bd-b0bb-4b7d-b0e1-3e2dba4fba08/payments"` // Records payments
}

// Member is the allocation of a single member in API v1.
type Member struct {
	ID            string              `json:"id" example:"alice"`
	Name          string              `json:"name" example:"Alice"`
	Participating bool                `json:"participating" example:"true"`
	Amount        *decimal.Decimal    `json:"amount,omitempty" example:"12.5"`       // Only set for the "amount" method
	Percentage    *decimal.Decimal    `json:"percentage,omitempty" example:"25"`     // Only set for the "percentage" method
	Shares        *decimal.Decimal    `json:"shares,omitempty" example:"2"`          // Only set for the "shares" method
	Owed          decimal.Decimal     `json:"owed" example:"21.05"`                  // Amount the member owes, rounded to cents
	Paid          decimal.Decimal     `json:"paid" example:"10"`                     // Sum of all payments of the member
	Remaining     decimal.Decimal     `json:"remaining" example:"11.05"`             // Amount still to be paid
	PaymentStatus split.PaymentStatus `json:"paymentStatus" example:"partial"`       // Payment status of the member
	PaidAt        *time.Time          `json:"paidAt" example:"2024-03-14T12:00:00Z"` // Time of the latest payment
}

// Activity is an entry of the activity log in API v1.
type Activity struct {
	Type        split.ActivityType `json:"type" example:"payment"`
	At          time.Time          `json:"at" example:"2024-03-14T12:00:00Z"`
	Actor       string             `json:"actor" example:"bob"`              // Member who performed the change
	MemberID    string             `json:"memberId,omitempty" example:"bob"` // Member who paid. Only set for payments
	Amount      *decimal.Decimal   `json:"amount,omitempty" example:"10"`    // Payment amount. Only set for payments
	Description string             `json:"description" example:"bob paid 10.00, 10.00 of 21.05 paid"`
}

// Split is the representation of a Split in API v1.
type Split struct {
	ID            uuid.UUID       `json:"id" example:"5b0fd5bd-b0bb-4b7d-b0e1-3e2dba4fba08"`
	CreatedAt     time.Time       `json:"createdAt" example:"2024-03-14T12:00:00Z"`
	UpdatedAt     time.Time       `json:"updatedAt" example:"2024-03-14T12:00:00Z"`
	Version       uint            `json:"version" example:"3"` // Incremented on every change
	GroupID       string          `json:"groupId" example:"flat-42"`
	Description   string          `json:"description" example:"Weekly groceries"`
	Currency      string          `json:"currency" example:"EUR"`
	PaidBy        string          `json:"paidBy" example:"alice"`
	BaseAmount    decimal.Decimal `json:"baseAmount" example:"84.2"`
	TaxPercentage decimal.Decimal `json:"taxPercentage" example:"19"`
	TaxAmount     decimal.Decimal `json:"taxAmount" example:"15.998"`    // Derived from base amount and tax percentage
	TotalAmount   decimal.Decimal `json:"totalAmount" example:"100.198"` // Base amount plus tax
	Outstanding   decimal.Decimal `json:"outstanding" example:"40.1"`    // Sum of the remaining balances of all participating members
	Method        split.Method    `json:"method" example:"equal"`
	Status        split.Status    `json:"status" example:"active"`
	SettledAt     *time.Time      `json:"settledAt" example:"2024-03-20T09:00:00Z"`   // Time the split was completed
	CancelledAt   *time.Time      `json:"cancelledAt" example:"2024-03-20T09:00:00Z"` // Time the split was cancelled
	Members       []Member        `json:"members"`
	Activity      []Activity      `json:"activity"`
	Links         SplitLinks      `json:"links"`
}

// newSplit returns the API v1 representation of the split
func newSplit(c *gin.Context, s split.Split) Split {
	url := fmt.Sprintf("%s/v1/splits/%s", c.GetString(string(models.ContextURL)), s.ID)

	data := Split{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Version:       s.Version,
		GroupID:       s.GroupID,
		Description:   s.Description,
		Currency:      s.Currency,
		PaidBy:        s.PaidBy,
		BaseAmount:    s.BaseAmount,
		TaxPercentage: s.TaxPercentage,
		TaxAmount:     s.TaxAmount,
		TotalAmount:   s.TotalAmount,
		Outstanding:   s.Outstanding(),
		Method:        s.Method,
		Status:        s.Status,
		SettledAt:     s.SettledAt,
		CancelledAt:   s.CancelledAt,
		Members:       make([]Member, 0, len(s.Allocations)),
		Activity:      make([]Activity, 0, len(s.Activity)),
		Links: SplitLinks{
			Self:     url,
			Activate: url + "/activate",
			Payments: url + "/payments",
		},
	}

	for _, a := range s.Allocations {
		m := Member{
			ID:            a.MemberID,
			Name:          a.MemberName,
			Participating: a.Participating,
			Owed:          a.Owed,
			Paid:          a.Paid,
			Remaining:     a.Remaining(),
			PaymentStatus: a.PaymentStatus,
			PaidAt:        a.PaidAt,
		}

		switch v := a.Value.(type) {
		case split.Amount:
			m.Amount = &v.Amount
		case split.Percentage:
			m.Percentage = &v.Percentage
		case split.Shares:
			m.Shares = &v.Shares
		}

		data.Members = append(data.Members, m)
	}

	for _, a := range s.Activity {
		activity := Activity{
			Type:        a.Type,
			At:          a.At,
			Actor:       a.Actor,
			MemberID:    a.MemberID,
			Description: a.Description,
		}

		if a.Type == split.ActivityPayment {
			amount := a.Amount
			activity.Amount = &amount
		}

		data.Activity = append(data.Activity, activity)
	}

	return data
}

type SplitResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this split
	Data  *Split  `json:"data"`                                                          // The split data, if the request was successful
}

type SplitListResponse struct {
	Data       []Split     `json:"data"`                                                          // List of splits
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SplitCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SplitResponse `json:"data"`                                                          // List of created splits
}

func (s *SplitCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SplitResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SplitQueryFilter struct {
	GroupID    string       `form:"group"`      // ID of the group
	MemberID   string       `form:"member"`     // ID of a member that is part of the split
	MemberName string       `form:"memberName"` // Glob pattern for the name of a member, e.g. "Al*"
	Status     split.Status `form:"status"`     // Status of the split
	Method     split.Method `form:"method"`     // Split method
	Offset     uint         `form:"offset"`     // The offset of the first split returned. Defaults to 0.
	Limit      int          `form:"limit"`      // Maximum number of splits to return. Defaults to 50.
}

// filter returns the storage filter for the query with the given limit.
func (f SplitQueryFilter) filter(limit int) models.SplitFilter {
	return models.SplitFilter{
		GroupID:    f.GroupID,
		MemberID:   f.MemberID,
		MemberName: f.MemberName,
		Status:     f.Status,
		Method:     f.Method,
		Offset:     f.Offset,
		Limit:      limit,
	}
}

type PaymentEditable struct {
	MemberID string          `json:"memberId" example:"bob"`                               // ID of the paying member
	Amount   decimal.Decimal `json:"amount" example:"10" minimum:"0.01" multipleOf:"0.01"` // Amount paid
}

// PaymentRange is the range a payment amount must be in: larger than min and at most max.
type PaymentRange struct {
	Min decimal.Decimal `json:"min" example:"0"`     // Exclusive lower bound
	Max decimal.Decimal `json:"max" example:"11.05"` // Inclusive upper bound, the remaining balance of the member
}

type PaymentResponse struct {
	Error *string       `json:"error" example:"the payment amount must be larger than zero and must not exceed the remaining balance"` // The error, if any occurred
	Range *PaymentRange `json:"range,omitempty"`                                                                                       // The valid range for the amount, set when the amount was invalid
	Data  *Split        `json:"data"`                                                                                                  // The split after the payment
}
