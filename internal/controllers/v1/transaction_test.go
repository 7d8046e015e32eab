package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/GustaPeruci/PersonalFinanceTracker/internal/controllers/v1"
	"github.com/GustaPeruci/PersonalFinanceTracker/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestTransaction creates a test transaction via the v1 API.
func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.Kind == "" {
		transaction.Kind = "fixed_expense"
	}

	if transaction.StartDate.IsZero() {
		transaction.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.TransactionEditable{transaction}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	return tr.Data[0]
}

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET Collection", "", http.MethodGet, ""},
		// Skipping POST Collection here since we need to check the individual transactions for that one
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions, ""},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet, ""},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch, ""},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetAll() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:   "credit",
		Amount: decimal.NewFromFloat(3000),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:   "fixed_expense",
		Amount: decimal.NewFromFloat(1200),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	if assert.NotNil(suite.T(), response.Pagination) {
		assert.Equal(suite.T(), int64(2), response.Pagination.Total)
		assert.Equal(suite.T(), 50, response.Pagination.Limit)
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:        "credit",
		Description: "Salary",
		Category:    "income",
		Amount:      decimal.NewFromFloat(3000),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:        "fixed_expense",
		Description: "Rent",
		Category:    "housing",
		Amount:      decimal.NewFromFloat(1200),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:        "installment",
		Description: "Washing machine",
		Category:    "household",
		Amount:      decimal.NewFromFloat(248.36),
		Installments: 6,
	})

	tests := []struct {
		name  string // Name for the test
		query string // The query string
		len   int    // Expected number of transactions
	}{
		{"Kind", "kind=credit", 1},
		{"Kind nonexistent matches", "kind=loan", 0},
		{"Category", "category=housing", 1},
		{"Description fuzzy", "description=machine", 1},
		{"Description no match", "description=車", 0},
		{"Amount exact", "amount=1200", 1},
		{"Amount at most", "amountLessOrEqual=1200", 2},
		{"Amount at least", "amountMoreOrEqual=1000", 2},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"Limit zero", "limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len, "Wrong number of transactions for query %q", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidKindFilter() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=subscription", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	endDate := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	response := createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:         "installment",
		Description:  "New washing machine",
		Category:     "household",
		Amount:       decimal.NewFromFloat(248.36),
		StartDate:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      &endDate,
		Installments: 6,
	})

	require.NotNil(suite.T(), response.Data)
	data := *response.Data

	assert.Equal(suite.T(), "New washing machine", data.Description)
	assert.Equal(suite.T(), 6, data.Installments)
	assert.Equal(suite.T(), 6, data.RemainingInstallments, "Remaining installments do not default to the installment count")
	if assert.NotNil(suite.T(), data.Active) {
		assert.True(suite.T(), *data.Active, "Transactions are not active by default")
	}
	assert.NotEmpty(suite.T(), data.Links.Self)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name        string
		transaction v1.TransactionEditable
	}{
		{"Invalid kind", v1.TransactionEditable{
			Kind:      "subscription",
			Amount:    decimal.NewFromFloat(10),
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		{"No amount", v1.TransactionEditable{
			Kind:      "credit",
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		{"No start date", v1.TransactionEditable{
			Kind:   "credit",
			Amount: decimal.NewFromFloat(10),
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.transaction})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &recorder, &response)

			if assert.Len(t, response.Data, 1) {
				assert.NotNil(t, response.Data[0].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Broken JSON", `{ "description": "Broken", "amount" }`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Not a list", `{ "description": "A single object" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:   "credit",
		Amount: decimal.NewFromFloat(3000),
	})

	recorder := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), transaction.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingleFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:        "fixed_expense",
		Description: "Streaming subscription",
		Amount:      decimal.NewFromFloat(24.90),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"description": "Streaming subscription, family plan",
		"amount":      34.90,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Streaming subscription, family plan", response.Data.Description)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(34.90)), "Amount is %s", response.Data.Amount)
	assert.Equal(suite.T(), transaction.Data.Kind, response.Data.Kind, "Kind changed by an unrelated patch")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateDeactivate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:   "fixed_expense",
		Amount: decimal.NewFromFloat(24.90),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"active": false,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Verify against the API, not just the PATCH response
	recorder = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	if assert.NotNil(suite.T(), response.Data.Active) {
		assert.False(suite.T(), *response.Data.Active)
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:   "credit",
		Amount: decimal.NewFromFloat(3000),
	})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid UUID", "http://example.com/v1/transactions/not-a-uuid", map[string]any{}, http.StatusBadRequest},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), map[string]any{}, http.StatusNotFound},
		{"Broken JSON", transaction.Data.Links.Self, `{ "amount": }`, http.StatusBadRequest},
		{"Invalid kind", transaction.Data.Links.Self, map[string]any{"kind": "subscription"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:   "credit",
		Amount: decimal.NewFromFloat(3000),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
