package models_test

import (
	"strings"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestDebtorAfterSave() {
	tests := []struct {
		name   string
		debtor models.Debtor
		err    error
	}{
		{"name missing", models.Debtor{TotalAmount: decimal.NewFromFloat(100)}, models.ErrDebtorNameRequired},
		{"amount zero", models.Debtor{Name: "Alex"}, models.ErrAmountNotPositive},
		{"amount negative", models.Debtor{Name: "Alex", TotalAmount: decimal.NewFromFloat(-10)}, models.ErrAmountNotPositive},
		{"valid", models.Debtor{Name: "Alex", TotalAmount: decimal.NewFromFloat(100)}, nil},
	}

	for _, tt := range tests {
		err := tt.debtor.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, "Unexpected error in case %q", tt.name)
	}
}

func (suite *TestSuiteStandard) TestDebtorDefaults() {
	debtor := suite.createTestDebtor(models.Debtor{
		Name:        "Alex",
		TotalAmount: decimal.NewFromFloat(253.01),
	})

	assert.Equal(suite.T(), models.DebtorActive, debtor.Status)
	assert.True(suite.T(), debtor.PaidAmount.IsZero())
}

func (suite *TestSuiteStandard) TestDebtorTrimWhitespace() {
	name := "  Alex \t"
	description := " Two borrowed concert tickets   "

	debtor := suite.createTestDebtor(models.Debtor{
		Name:        name,
		Description: description,
		TotalAmount: decimal.NewFromFloat(253.01),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), debtor.Name)
	assert.Equal(suite.T(), strings.TrimSpace(description), debtor.Description)
}

func (suite *TestSuiteStandard) TestDebtorSettlement() {
	tests := []struct {
		name       string
		total      float64
		paid       float64
		settlement models.Settlement
	}{
		{"nothing paid", 100, 0, models.SettlementUnpaid},
		{"partially paid", 100, 40, models.SettlementPartial},
		{"exactly paid", 100, 100, models.SettlementPaid},
		{"overpaid", 100, 120, models.SettlementPaid},
	}

	for _, tt := range tests {
		debtor := models.Debtor{
			Name:        tt.name,
			TotalAmount: decimal.NewFromFloat(tt.total),
			PaidAmount:  decimal.NewFromFloat(tt.paid),
		}

		assert.Equal(suite.T(), tt.settlement, debtor.Settlement(), "Settlement wrong in case %q", tt.name)
	}
}

func (suite *TestSuiteStandard) TestDebtorOutstanding() {
	debtor := models.Debtor{
		TotalAmount: decimal.NewFromFloat(253.01),
		PaidAmount:  decimal.NewFromFloat(100),
	}

	assert.True(suite.T(), debtor.Outstanding().Equal(decimal.NewFromFloat(153.01)), "Outstanding is %s", debtor.Outstanding())
}

func (suite *TestSuiteStandard) TestDebtorDueDateUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")
	due := time.Date(2025, 10, 1, 14, 0, 0, 0, tz)

	debtor := suite.createTestDebtor(models.Debtor{
		Name:        "Alex",
		TotalAmount: decimal.NewFromFloat(100),
		DueDate:     &due,
	})

	assert.Equal(suite.T(), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), *debtor.DueDate)
}

func (suite *TestSuiteStandard) TestDebtors() {
	_ = suite.createTestDebtor(models.Debtor{Name: "Alex", TotalAmount: decimal.NewFromFloat(100)})
	_ = suite.createTestDebtor(models.Debtor{Name: "Sam", TotalAmount: decimal.NewFromFloat(50)})

	debtors, err := models.Debtors(models.LocalUser)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), debtors, 2)
}

func (suite *TestSuiteStandard) TestDebtorsDBError() {
	suite.CloseDB()

	_, err := models.Debtors(models.LocalUser)
	assert.NotNil(suite.T(), err)
}
