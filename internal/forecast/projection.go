package forecast

import (
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyProjection is the complete picture of one projected month.
type MonthlyProjection struct {
	Year               int               `json:"year" example:"2025"`
	Month              int               `json:"month" example:"7"`
	MonthName          string            `json:"monthName" example:"July"`
	Income             decimal.Decimal   `json:"income" example:"3858.61"`
	FixedExpenses      decimal.Decimal   `json:"fixedExpenses" example:"24.90"`
	Installments       decimal.Decimal   `json:"installments" example:"1490.32"`
	TotalExpenses      decimal.Decimal   `json:"totalExpenses" example:"1515.22"`
	NetBalance         decimal.Decimal   `json:"netBalance" example:"2343.39"`
	AccumulatedBalance decimal.Decimal   `json:"accumulatedBalance" example:"4686.78"`
	Transactions       MonthTransactions `json:"transactions"`
}

// Generate projects the given number of consecutive months, starting at the
// start month, over the transaction snapshot.
//
// The result has exactly months entries in strictly increasing calendar
// order. The accumulated balance of an entry is the prefix sum of all net
// balances up to and including it; it starts at zero before the first
// projected month, so the projection describes the future cashflow on its
// own, not the account balance.
func Generate(transactions []models.Transaction, start types.Month, months int) []MonthlyProjection {
	projections := make([]MonthlyProjection, 0, months)
	accumulated := decimal.Zero

	for i := 0; i < months; i++ {
		projection := AggregateMonth(transactions, start.AddDate(0, i))

		accumulated = accumulated.Add(projection.NetBalance)
		projection.AccumulatedBalance = accumulated

		projections = append(projections, projection)
	}

	return projections
}
