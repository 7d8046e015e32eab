package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/GustaPeruci/PersonalFinanceTracker/internal/controllers/v1"
	"github.com/GustaPeruci/PersonalFinanceTracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Income.IsZero())
	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.NotNil(suite.T(), response.Data.FixedExpenses)
	assert.NotNil(suite.T(), response.Data.RecentDebtors)
}

func (suite *TestSuiteStandard) TestDashboard() {
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:      "credit",
		Amount:    decimal.NewFromFloat(3000),
		StartDate: past,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:        "fixed_expense",
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1200),
		StartDate:   past,
	})

	// An installment window anchored far in the past does not reach the
	// current month anymore
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Kind:         "installment",
		Amount:       decimal.NewFromFloat(250),
		StartDate:    past,
		Installments: 6,
	})

	debtor := createTestDebtor(suite.T(), v1.DebtorEditable{
		Name:        "Alex",
		TotalAmount: decimal.NewFromFloat(253.01),
	})
	_ = createTestDebtorPayment(suite.T(), *debtor.Data, v1.DebtorPaymentEditable{
		Amount: decimal.NewFromFloat(100),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	data := *response.Data

	assert.True(suite.T(), data.Income.Equal(decimal.NewFromFloat(3000)), "Income is %s", data.Income)
	assert.True(suite.T(), data.Expenses.Equal(decimal.NewFromFloat(1200)), "Expenses is %s", data.Expenses)
	assert.True(suite.T(), data.Balance.Equal(decimal.NewFromFloat(1800)), "Balance is %s", data.Balance)
	assert.True(suite.T(), data.AmountToReceive.Equal(decimal.NewFromFloat(153.01)), "Amount to receive is %s", data.AmountToReceive)

	if assert.Len(suite.T(), data.FixedExpenses, 1) {
		assert.Equal(suite.T(), "Rent", data.FixedExpenses[0].Description)
	}
	assert.Len(suite.T(), data.ActiveInstallments, 0, "An expired installment window must not appear")

	if assert.Len(suite.T(), data.RecentDebtors, 1) {
		assert.Equal(suite.T(), "Alex", data.RecentDebtors[0].Name)
	}
}

func (suite *TestSuiteStandard) TestDashboardRecentDebtorsCapped() {
	for i := 0; i < 7; i++ {
		_ = createTestDebtor(suite.T(), v1.DebtorEditable{})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data.RecentDebtors, 5)
}

func (suite *TestSuiteStandard) TestDashboardDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
