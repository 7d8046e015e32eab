// Package balance maintains the monthly balance cache. It recomputes
// snapshots from the transaction set via the forecast engine and writes
// them back through the models layer.
package balance

import (
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/forecast"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/google/uuid"
)

// RefreshYear recomputes the twelve monthly snapshots of one calendar year
// for a user and upserts them into the cache. The cache is derived data,
// a refresh can be repeated at any time with the same outcome.
func RefreshYear(userID uuid.UUID, year int) error {
	transactions, err := models.Transactions(userID)
	if err != nil {
		return err
	}

	projections := forecast.Generate(transactions, types.NewMonth(year, 1), 12)

	for _, p := range projections {
		err := models.UpsertMonthlyBalance(models.MonthlyBalance{
			UserID:             userID,
			Month:              types.NewMonth(p.Year, time.Month(p.Month)),
			Income:             p.Income,
			Expenses:           p.TotalExpenses,
			Balance:            p.NetBalance,
			AccumulatedBalance: p.AccumulatedBalance,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
