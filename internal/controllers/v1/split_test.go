package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/split-star/backend/internal/controllers/v1"
	"github.com/split-star/backend/internal/httputil"
	"github.com/split-star/backend/internal/models"
	"github.com/split-star/backend/internal/split"
	"github.com/split-star/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// actor is the header set for all requests that change splits.
var actor = map[string]string{httputil.ActorHeader: "alice"}

func createTestSplit(t *testing.T, s v1.SplitEditable, expectedStatus ...int) v1.SplitResponse {
	if s.Method == "" {
		s.Method = split.MethodEqual
	}

	if s.BaseAmount.IsZero() {
		s.BaseAmount = decimal.NewFromInt(100)
	}

	if s.Members == nil {
		no := false
		s.Members = []v1.MemberEditable{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
			{ID: "carol", Name: "Carol", Participating: &no},
		}
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.SplitEditable{s}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/splits", body, actor)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.SplitCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	if len(response.Data) > 0 {
		return response.Data[0]
	}

	return v1.SplitResponse{Error: response.Error}
}

func member(t *testing.T, s v1.Split, id string) v1.Member {
	for _, m := range s.Members {
		if m.ID == id {
			return m
		}
	}

	require.FailNow(t, "member not found", id)
	return v1.Member{}
}

// TestSplitsCreate verifies that creation of splits computes the allocations.
func (suite *TestSuiteStandard) TestSplitsCreate() {
	s := createTestSplit(suite.T(), v1.SplitEditable{
		GroupID:       "flat-42",
		Description:   "Groceries",
		Currency:      "EUR",
		PaidBy:        "alice",
		TaxPercentage: decimal.NewFromInt(10),
	})

	require.NotNil(suite.T(), s.Data)
	data := *s.Data

	assert.Equal(suite.T(), split.StatusDraft, data.Status)
	assert.Equal(suite.T(), uint(1), data.Version)
	assert.True(suite.T(), data.TotalAmount.Equal(decimal.NewFromInt(110)), data.TotalAmount.String())
	assert.True(suite.T(), data.Outstanding.Equal(decimal.NewFromInt(110)), data.Outstanding.String())
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/splits/%s", data.ID), data.Links.Self)
	assert.Equal(suite.T(), data.Links.Self+"/payments", data.Links.Payments)

	assert.True(suite.T(), member(suite.T(), data, "alice").Owed.Equal(decimal.NewFromInt(55)))
	assert.True(suite.T(), member(suite.T(), data, "bob").Owed.Equal(decimal.NewFromInt(55)))

	carol := member(suite.T(), data, "carol")
	assert.False(suite.T(), carol.Participating)
	assert.True(suite.T(), carol.Owed.IsZero())

	require.Len(suite.T(), data.Activity, 1)
	assert.Equal(suite.T(), split.ActivityCreated, data.Activity[0].Type)
	assert.Equal(suite.T(), "alice", data.Activity[0].Actor)
	assert.Nil(suite.T(), data.Activity[0].Amount)
}

func (suite *TestSuiteStandard) TestSplitsCreateMethods() {
	no := false

	tests := []struct {
		name     string
		editable v1.SplitEditable
		owed     map[string]string
	}{
		{
			"Equal with rounding",
			v1.SplitEditable{
				Method:     split.MethodEqual,
				BaseAmount: decimal.NewFromInt(10),
				Members:    []v1.MemberEditable{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			},
			map[string]string{"a": "3.33", "b": "3.33", "c": "3.33"},
		},
		{
			"Amount",
			v1.SplitEditable{
				Method:     split.MethodAmount,
				BaseAmount: decimal.NewFromInt(30),
				Members: []v1.MemberEditable{
					{ID: "a", Amount: ptr(decimal.NewFromInt(10))},
					{ID: "b", Amount: ptr(decimal.NewFromInt(20))},
				},
			},
			map[string]string{"a": "10", "b": "20"},
		},
		{
			"Percentage",
			v1.SplitEditable{
				Method:     split.MethodPercentage,
				BaseAmount: decimal.NewFromInt(200),
				Members: []v1.MemberEditable{
					{ID: "a", Percentage: ptr(decimal.NewFromInt(25))},
					{ID: "b", Percentage: ptr(decimal.NewFromInt(75))},
				},
			},
			map[string]string{"a": "50", "b": "150"},
		},
		{
			"Shares with default",
			v1.SplitEditable{
				Method:     split.MethodShares,
				BaseAmount: decimal.NewFromInt(90),
				Members: []v1.MemberEditable{
					{ID: "a", Shares: ptr(decimal.NewFromInt(2))},
					{ID: "b"},
					{ID: "c", Participating: &no},
				},
			},
			map[string]string{"a": "60", "b": "30", "c": "0"},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			s := createTestSplit(t, tt.editable)
			require.NotNil(t, s.Data)

			for id, owed := range tt.owed {
				m := member(t, *s.Data, id)
				assert.True(t, m.Owed.Equal(decimal.RequireFromString(owed)), "member %s owes %s, expected %s", id, m.Owed, owed)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSplitsCreateFails() {
	tests := []struct {
		name     string
		editable v1.SplitEditable
		err      error
	}{
		{
			"Invalid status",
			v1.SplitEditable{Status: split.StatusCompleted},
			nil,
		},
		{
			"Invalid method",
			v1.SplitEditable{Method: "random"},
			split.ErrInvalidSplitMethod,
		},
		{
			"Percentages do not sum up to 100",
			v1.SplitEditable{
				Method: split.MethodPercentage,
				Members: []v1.MemberEditable{
					{ID: "a", Percentage: ptr(decimal.NewFromInt(30))},
					{ID: "b", Percentage: ptr(decimal.NewFromInt(30))},
				},
			},
			split.ErrInvalidSplitPercentages,
		},
		{
			"Duplicate member",
			v1.SplitEditable{Members: []v1.MemberEditable{{ID: "a"}, {ID: "a"}}},
			split.ErrDuplicateMember,
		},
		{
			"Ambiguous member value",
			v1.SplitEditable{
				Method:  split.MethodAmount,
				Members: []v1.MemberEditable{{ID: "a", Amount: ptr(decimal.NewFromInt(1)), Shares: ptr(decimal.NewFromInt(1))}},
			},
			nil,
		},
		{
			"Empty member ID",
			v1.SplitEditable{Members: []v1.MemberEditable{{ID: "a"}, {ID: " ", Name: "Nobody"}}},
			nil,
		},
		{
			"Negative base amount",
			v1.SplitEditable{BaseAmount: decimal.NewFromInt(-5)},
			split.ErrInvalidAmount,
		},
		{
			"Invalid currency",
			v1.SplitEditable{Currency: "EURO"},
			models.ErrCurrencyInvalid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			s := createTestSplit(t, tt.editable, http.StatusBadRequest)
			require.NotNil(t, s.Error)
			assert.Nil(t, s.Data)

			if tt.err != nil {
				assert.Contains(t, *s.Error, tt.err.Error())
			}
		})
	}
}

// TestSplitsCreateMixed verifies that the response code is the highest status
// of all splits in the request.
func (suite *TestSuiteStandard) TestSplitsCreateMixed() {
	body := []v1.SplitEditable{
		{
			Method:     split.MethodEqual,
			BaseAmount: decimal.NewFromInt(10),
			Members:    []v1.MemberEditable{{ID: "a"}},
		},
		{
			Method:     "random",
			BaseAmount: decimal.NewFromInt(10),
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/splits", body, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SplitCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.Nil(suite.T(), response.Data[0].Error)
	assert.Nil(suite.T(), response.Data[1].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestSplitsCreateBadRequest() {
	tests := []struct {
		name    string
		body    any
		headers map[string]string
		err     string
	}{
		{"No actor", `[{"method": "equal"}]`, map[string]string{}, httputil.ErrActorMissing.Error()},
		{"Blank actor", `[{"method": "equal"}]`, map[string]string{httputil.ActorHeader: "  "}, httputil.ErrActorMissing.Error()},
		{"No body", "", actor, httputil.ErrRequestBodyEmpty.Error()},
		{"Broken body", `[{ "description": 2 }]`, actor, "cannot unmarshal number"},
		{"Not JSON", `{{`, actor, httputil.ErrInvalidBody.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/splits", tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SplitCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

// TestSplitsCreateActive verifies that splits can be created as active.
func (suite *TestSuiteStandard) TestSplitsCreateActive() {
	s := createTestSplit(suite.T(), v1.SplitEditable{Status: split.StatusActive})
	assert.Equal(suite.T(), split.StatusActive, s.Data.Status)

	// A split where nobody owes anything is completed right away
	s = createTestSplit(suite.T(), v1.SplitEditable{
		Status:  split.StatusActive,
		Method:  split.MethodAmount,
		Members: []v1.MemberEditable{{ID: "a", Amount: ptr(decimal.Zero)}},
	})
	assert.Equal(suite.T(), split.StatusCompleted, s.Data.Status)
	assert.NotNil(suite.T(), s.Data.SettledAt)
}

func (suite *TestSuiteStandard) TestSplitsGetSingle() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing split", s.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No split with ID", uuid.NewString(), http.StatusNotFound},
		{"Invalid ID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/splits/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SplitResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, s.Data.ID, response.Data.ID)
				assert.Len(t, response.Data.Members, 3)
				return
			}

			require.NotNil(t, response.Error)
			if tt.status == http.StatusNotFound {
				assert.Equal(t, "there is no split matching your query", *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSplitsGetFilter() {
	createTestSplit(suite.T(), v1.SplitEditable{
		GroupID: "flat",
		Members: []v1.MemberEditable{{ID: "alice", Name: "Alice"}, {ID: "bob", Name: "Bob"}},
	})

	createTestSplit(suite.T(), v1.SplitEditable{
		GroupID: "flat",
		Status:  split.StatusActive,
		Method:  split.MethodShares,
		Members: []v1.MemberEditable{{ID: "alice", Name: "Alice"}, {ID: "dave", Name: "Dave"}},
	})

	createTestSplit(suite.T(), v1.SplitEditable{
		GroupID: "holiday",
		Status:  split.StatusActive,
		Members: []v1.MemberEditable{{ID: "erin", Name: "Erin"}},
	})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Group", "group=flat", 2, 2},
		{"Member", "member=alice", 2, 2},
		{"Member and group", "member=erin&group=flat", 0, 0},
		{"Member name glob", "memberName=D*", 1, 1},
		{"Status", "status=active", 2, 2},
		{"Method", "method=shares", 1, 1},
		{"Limit", "limit=1", 1, 3},
		{"Offset", "offset=2", 1, 3},
		{"Offset beyond", "offset=5", 0, 3},
		{"Limit 0", "limit=0", 0, 3},
		{"No limit", "limit=-1", 3, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/splits?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SplitListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.len, response.Pagination.Count)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestSplitsGetFilterInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid status", "status=paid"},
		{"Invalid method", "method=random"},
		{"Invalid offset", "offset=-1"},
		{"Invalid limit", "limit=many"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/splits?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSplitsGetDefaultLimit() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/splits", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplitListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestSplitsUpdate() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})
	url := s.Data.Links.Self

	// Pay a part so that the payment is kept on revision
	r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Payments, v1.PaymentEditable{MemberID: "bob", Amount: decimal.NewFromInt(20)}, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"description": "Dinner",
		"baseAmount":  "300",
		"method":      "shares",
		"members": []map[string]any{
			{"id": "alice", "name": "Alice", "shares": "2"},
			{"id": "bob", "name": "Bob"},
		},
	}, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data
	assert.Equal(suite.T(), "Dinner", data.Description)
	assert.Equal(suite.T(), split.MethodShares, data.Method)
	assert.Equal(suite.T(), uint(3), data.Version)
	assert.Len(suite.T(), data.Members, 2)

	alice := member(suite.T(), *data, "alice")
	assert.True(suite.T(), alice.Owed.Equal(decimal.NewFromInt(200)), alice.Owed.String())
	require.NotNil(suite.T(), alice.Shares)
	assert.True(suite.T(), alice.Shares.Equal(decimal.NewFromInt(2)))

	bob := member(suite.T(), *data, "bob")
	assert.True(suite.T(), bob.Owed.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), bob.Paid.Equal(decimal.NewFromInt(20)))
	assert.True(suite.T(), bob.Remaining.Equal(decimal.NewFromInt(80)))
	assert.Equal(suite.T(), split.PaymentPartial, bob.PaymentStatus)

	last := data.Activity[len(data.Activity)-1]
	assert.Equal(suite.T(), split.ActivityModified, last.Type)
}

func (suite *TestSuiteStandard) TestSplitsUpdateFails() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid ID", "NotParseableAsUUID", `{"description": "x"}`, http.StatusBadRequest},
		{"No split with ID", uuid.NewString(), `{"description": "x"}`, http.StatusNotFound},
		{"Empty body", s.Data.ID.String(), "", http.StatusBadRequest},
		{"Broken body", s.Data.ID.String(), `{"description": 2}`, http.StatusBadRequest},
		{"Invalid method", s.Data.ID.String(), `{"method": "random"}`, http.StatusBadRequest},
		{"Invalid percentages", s.Data.ID.String(), `{"method": "percentage", "members": [{"id": "a", "percentage": "20"}]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/splits/%s", tt.id), tt.body, actor)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SplitResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

// TestSplitsUpdateOwedBelowPaid verifies that a change cannot lower the owed
// amount of a member below what they already paid.
func (suite *TestSuiteStandard) TestSplitsUpdateOwedBelowPaid() {
	s := createTestSplit(suite.T(), v1.SplitEditable{Status: split.StatusActive})

	createTestPayment(suite.T(), s.Data.Links.Payments, v1.PaymentEditable{MemberID: "alice", Amount: decimal.NewFromInt(30)})

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, `{"baseAmount": "20"}`, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, split.ErrOwedBelowPaid.Error())

	r = test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.BaseAmount.Equal(decimal.NewFromInt(100)), "the split must not change")

	// Withdrawing a member who paid is not possible either
	r = test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, `{"members": [{"id": "alice", "participating": false}, {"id": "bob"}]}`, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, split.ErrMemberHasPayments.Error())
}

func (suite *TestSuiteStandard) TestSplitsUpdateEmptyMemberID() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, `{"members": [{"id": "alice"}, {"id": ""}]}`, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "the id of a member must not be empty")
}

// TestSplitsUpdateMemberWithPayments verifies that members who paid cannot be removed.
func (suite *TestSuiteStandard) TestSplitsUpdateMemberWithPayments() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Payments, v1.PaymentEditable{MemberID: "bob", Amount: decimal.NewFromInt(5)}, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, `{"members": [{"id": "alice"}]}`, actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, split.ErrMemberHasPayments.Error())
}

func (suite *TestSuiteStandard) TestSplitsActivate() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Activate, "", actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), split.StatusActive, response.Data.Status)

	// Activating twice is not allowed
	r = test.Request(suite.T(), http.MethodPost, s.Data.Links.Activate, "", actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, split.ErrInvalidTransition.Error())
}

// TestSplitsActivateSettled verifies that a draft split that is fully paid
// is completed on activation.
func (suite *TestSuiteStandard) TestSplitsActivateSettled() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	for _, id := range []string{"alice", "bob"} {
		r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Payments, v1.PaymentEditable{MemberID: id, Amount: decimal.NewFromInt(50)}, actor)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.PaymentResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Equal(suite.T(), split.StatusDraft, response.Data.Status, "drafts are never completed by payments")
	}

	r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Activate, "", actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), split.StatusCompleted, response.Data.Status)
	assert.NotNil(suite.T(), response.Data.SettledAt)
}

func (suite *TestSuiteStandard) TestSplitsCancel() {
	s := createTestSplit(suite.T(), v1.SplitEditable{Status: split.StatusActive})

	r := test.Request(suite.T(), http.MethodDelete, s.Data.Links.Self, "", actor)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), split.StatusCancelled, response.Data.Status)
	assert.NotNil(suite.T(), response.Data.CancelledAt)
	assert.Equal(suite.T(), split.ActivityCancelled, response.Data.Activity[len(response.Data.Activity)-1].Type)

	// Cancelled splits cannot be changed anymore
	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"Cancel again", http.MethodDelete, s.Data.Links.Self, ""},
		{"Update", http.MethodPatch, s.Data.Links.Self, `{"description": "x"}`},
		{"Activate", http.MethodPost, s.Data.Links.Activate, ""},
		{"Pay", http.MethodPost, s.Data.Links.Payments, v1.PaymentEditable{MemberID: "bob", Amount: decimal.NewFromInt(1)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, tt.body, actor)
			test.AssertHTTPStatus(t, &r, http.StatusConflict)
			assert.Contains(t, r.Body.String(), split.ErrSplitNotMutable.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestSplitsCancelFails() {
	tests := []struct {
		name    string
		id      string
		headers map[string]string
		status  int
	}{
		{"Invalid ID", "NotParseableAsUUID", actor, http.StatusBadRequest},
		{"No split with ID", uuid.NewString(), actor, http.StatusNotFound},
		{"No actor", createTestSplit(suite.T(), v1.SplitEditable{}).Data.ID.String(), map[string]string{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/splits/%s", tt.id), "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestSplitsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestSplitsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestSplit(t, v1.SplitEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET list fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/splits", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.SplitListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
		{
			"GET single fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/splits/%s", uuid.New()), "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
		{
			"Payment fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/splits/%s/payments", uuid.New()), v1.PaymentEditable{MemberID: "bob", Amount: decimal.NewFromInt(1)}, actor)
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestSplitsOptions() {
	s := createTestSplit(suite.T(), v1.SplitEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"No split with this ID", "/" + uuid.NewString(), http.StatusNotFound, ""},
		{"Not a valid UUID", "/NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Split exists", "/" + s.Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Activate", "/" + s.Data.ID.String() + "/activate", http.StatusNoContent, "OPTIONS, POST"},
		{"Payments", "/" + s.Data.ID.String() + "/payments", http.StatusNoContent, "OPTIONS, POST"},
		{"Payments for missing split", "/" + uuid.NewString() + "/payments", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/splits"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
