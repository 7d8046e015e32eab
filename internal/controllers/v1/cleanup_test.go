package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/GustaPeruci/PersonalFinanceTracker/internal/controllers/v1"
	"github.com/GustaPeruci/PersonalFinanceTracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(17.32)})
	debtor := createTestDebtor(suite.T(), v1.DebtorEditable{Name: "TestCleanup"})
	_ = createTestDebtorPayment(suite.T(), *debtor.Data, v1.DebtorPaymentEditable{Amount: decimal.NewFromFloat(10)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/monthly-balances/refresh", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	tests := []string{
		"http://example.com/v1/transactions",
		"http://example.com/v1/debtors",
		"http://example.com/v1/monthly-balances",
	}

	// Delete
	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodGet, tt, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
