package models

import (
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// MonthlyBalance is a persisted snapshot of one month's totals for fast
// dashboard reads.
//
// It is a cache, not a source of truth: the forecast package can recompute
// the same numbers from the transaction set at any time, and the two only
// agree after an explicit refresh (the REST endpoint or the scheduled job).
type MonthlyBalance struct {
	Timestamps
	UserID             uuid.UUID       `json:"userId" gorm:"primaryKey"`
	Month              types.Month     `json:"month" gorm:"primaryKey"`
	Income             decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)" example:"3858.61"`
	Expenses           decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)" example:"1515.22"`
	Balance            decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"2343.39"`
	AccumulatedBalance decimal.Decimal `json:"accumulatedBalance" gorm:"type:DECIMAL(20,8)" example:"4686.78"`
}

// UpsertMonthlyBalance writes a snapshot, replacing an existing one for the
// same user and month.
func UpsertMonthlyBalance(balance MonthlyBalance) error {
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		UpdateAll: true,
	}).Create(&balance).Error
}

// MonthlyBalances returns the snapshots of one calendar year in month order.
func MonthlyBalances(userID uuid.UUID, year int) ([]MonthlyBalance, error) {
	var balances []MonthlyBalance

	err := DB.
		Where("user_id = ?", userID).
		Where("month >= date(?) AND month < date(?)", types.NewMonth(year, 1), types.NewMonth(year+1, 1)).
		Order("month ASC").
		Find(&balances).Error
	if err != nil {
		return nil, err
	}

	return balances, nil
}
