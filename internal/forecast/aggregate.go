package forecast

import (
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/shopspring/decimal"
)

// MonthTransactions holds the transactions that are active in one month,
// bucketed by how they enter the monthly math.
type MonthTransactions struct {
	Credits       []models.Transaction `json:"credits"`       // Income active in the month
	FixedExpenses []models.Transaction `json:"fixedExpenses"` // Fixed expenses active in the month
	Installments  []models.Transaction `json:"installments"`  // Installment purchases whose window covers the month
}

// TransactionsForMonth buckets the transaction set for one target month.
//
// Loan-kind transactions are not placed in any bucket and therefore never
// show up in projections. Folding loans into the expense total silently
// would change every projected balance, so until their accounting is
// decided they stay visible only in the transaction list.
func TransactionsForMonth(transactions []models.Transaction, month types.Month) MonthTransactions {
	buckets := MonthTransactions{
		Credits:       make([]models.Transaction, 0),
		FixedExpenses: make([]models.Transaction, 0),
		Installments:  make([]models.Transaction, 0),
	}

	for _, t := range transactions {
		switch t.Kind {
		case models.KindCredit:
			if ActiveInMonth(t, month) {
				buckets.Credits = append(buckets.Credits, t)
			}
		case models.KindFixedExpense:
			if ActiveInMonth(t, month) {
				buckets.FixedExpenses = append(buckets.FixedExpenses, t)
			}
		case models.KindInstallment:
			if InstallmentActiveInMonth(t, month) {
				buckets.Installments = append(buckets.Installments, t)
			}
		}
	}

	return buckets
}

func sumAmounts(transactions []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}

	return sum
}

// AggregateMonth computes the figures for one target month: the buckets,
// the sum of each bucket and the net balance. The accumulated balance is
// left at zero, Generate fills it in across the projection window.
func AggregateMonth(transactions []models.Transaction, month types.Month) MonthlyProjection {
	buckets := TransactionsForMonth(transactions, month)

	income := sumAmounts(buckets.Credits)
	fixedExpenses := sumAmounts(buckets.FixedExpenses)
	installments := sumAmounts(buckets.Installments)
	totalExpenses := fixedExpenses.Add(installments)

	return MonthlyProjection{
		Year:          month.Year(),
		Month:         int(month.Month()),
		MonthName:     month.Name(),
		Income:        income,
		FixedExpenses: fixedExpenses,
		Installments:  installments,
		TotalExpenses: totalExpenses,
		NetBalance:    income.Sub(totalExpenses),
		Transactions:  buckets,
	}
}
