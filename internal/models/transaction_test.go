package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionKindValid() {
	tests := []struct {
		kind  models.TransactionKind
		valid bool
	}{
		{models.KindCredit, true},
		{models.KindFixedExpense, true},
		{models.KindInstallment, true},
		{models.KindLoan, true},
		{models.TransactionKind(""), false},
		{models.TransactionKind("Credit"), false},
		{models.TransactionKind("subscription"), false},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.valid, tt.kind.Valid(), "Validity wrong for %q", tt.kind)
	}
}

func (suite *TestSuiteStandard) TestTransactionAfterSave() {
	endBeforeStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"invalid kind",
			models.Transaction{
				Kind:      "subscription",
				Amount:    decimal.NewFromFloat(10),
				StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			models.ErrTransactionKindInvalid,
		},
		{
			"amount zero",
			models.Transaction{
				Kind:      models.KindCredit,
				StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			models.ErrAmountNotPositive,
		},
		{
			"amount negative",
			models.Transaction{
				Kind:      models.KindCredit,
				Amount:    decimal.NewFromFloat(-10),
				StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			models.ErrAmountNotPositive,
		},
		{
			"start date missing",
			models.Transaction{
				Kind:   models.KindCredit,
				Amount: decimal.NewFromFloat(10),
			},
			models.ErrTransactionStartDateRequired,
		},
		{
			"end before start",
			models.Transaction{
				Kind:      models.KindFixedExpense,
				Amount:    decimal.NewFromFloat(10),
				StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   &endBeforeStart,
			},
			models.ErrEndBeforeStart,
		},
		{
			"remaining above total",
			models.Transaction{
				Kind:                  models.KindInstallment,
				Amount:                decimal.NewFromFloat(10),
				StartDate:             time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				Installments:          4,
				RemainingInstallments: 6,
			},
			models.ErrRemainingAboveTotal,
		},
		{
			"valid",
			models.Transaction{
				Kind:      models.KindCredit,
				Amount:    decimal.NewFromFloat(3000),
				StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.transaction.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionBeforeSaveDefaults() {
	transaction := models.Transaction{
		Kind:      models.KindFixedExpense,
		Amount:    decimal.NewFromFloat(24.90),
		StartDate: time.Date(2025, 7, 14, 18, 43, 12, 0, time.UTC),
	}

	err := transaction.BeforeSave(&gorm.DB{})
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "other", transaction.Category)
	assert.Equal(suite.T(), 1, transaction.Installments)
	assert.Equal(suite.T(), 1, transaction.RemainingInstallments)
	assert.Equal(suite.T(), time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), transaction.StartDate)
}

func (suite *TestSuiteStandard) TestTransactionActiveDefaultsTrue() {
	transaction := suite.createTestTransaction(models.Transaction{
		Kind:      models.KindCredit,
		Amount:    decimal.NewFromFloat(3000),
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	var reloaded models.Transaction
	err := models.DB.First(&reloaded, transaction.ID).Error
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), reloaded.Active, "Transactions created without an explicit active flag must default to active")
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	description := " Streaming subscription    "
	category := "  subscription \t"

	transaction := suite.createTestTransaction(models.Transaction{
		Kind:        models.KindFixedExpense,
		Description: description,
		Category:    category,
		Amount:      decimal.NewFromFloat(24.90),
		StartDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), strings.TrimSpace(description), transaction.Description)
	assert.Equal(suite.T(), strings.TrimSpace(category), transaction.Category)
}

func (suite *TestSuiteStandard) TestTransactionDatesUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")
	end := time.Date(2025, 12, 1, 14, 0, 0, 0, tz)

	transaction := suite.createTestTransaction(models.Transaction{
		Kind:      models.KindFixedExpense,
		Amount:    decimal.NewFromFloat(50),
		StartDate: time.Date(2025, 7, 1, 3, 4, 5, 6, tz),
		EndDate:   &end,
	})

	var reloaded models.Transaction
	err := models.DB.First(&reloaded, transaction.ID).Error
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), time.UTC, reloaded.StartDate.Location(), "Timezone for start date is not UTC")
	assert.Equal(suite.T(), time.UTC, reloaded.EndDate.Location(), "Timezone for end date is not UTC")
}

func (suite *TestSuiteStandard) TestTransactions() {
	first := suite.createTestTransaction(models.Transaction{
		Kind:      models.KindCredit,
		Amount:    decimal.NewFromFloat(3000),
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		Kind:      models.KindFixedExpense,
		Amount:    decimal.NewFromFloat(1200),
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := models.Transactions(models.LocalUser)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), transactions, 2)

	// Another user's transactions are invisible
	transactions, err = models.Transactions(first.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), transactions, 0)
}

func (suite *TestSuiteStandard) TestTransactionsDBError() {
	suite.CloseDB()

	_, err := models.Transactions(models.LocalUser)
	assert.NotNil(suite.T(), err)
}
