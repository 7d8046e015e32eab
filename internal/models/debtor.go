package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DebtorStatus is a user-managed tag on a debtor. It is advisory: the
// authoritative settlement state is always derived from the amounts, see
// Debtor.Settlement.
type DebtorStatus string

const (
	DebtorActive  DebtorStatus = "active"
	DebtorPaid    DebtorStatus = "paid"
	DebtorOverdue DebtorStatus = "overdue"
)

// Settlement is the settlement state derived from the paid amount.
type Settlement string

const (
	SettlementUnpaid  Settlement = "unpaid"
	SettlementPartial Settlement = "partial"
	SettlementPaid    Settlement = "paid"
)

// Debtor is a third party that owes the user money.
type Debtor struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`
	Name        string          `json:"name" example:"Alex"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)" example:"253.01"`

	// PaidAmount is recomputed as the sum of the debtor's payments whenever
	// a payment is recorded. It is never written directly.
	PaidAmount decimal.Decimal `json:"paidAmount" gorm:"type:DECIMAL(20,8)" example:"100.00"`

	Description string          `json:"description" example:"Two borrowed concert tickets"`
	DueDate     *time.Time      `json:"dueDate" example:"2025-10-01T00:00:00Z"`
	Status      DebtorStatus    `json:"status" example:"active" default:"active"`
	Payments    []DebtorPayment `json:"-"`
}

// Outstanding returns the amount the debtor still owes.
func (d Debtor) Outstanding() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// Settlement derives the settlement state from the amounts.
func (d Debtor) Settlement() Settlement {
	if d.Outstanding().LessThanOrEqual(decimal.Zero) {
		return SettlementPaid
	}

	if d.PaidAmount.IsZero() {
		return SettlementUnpaid
	}

	return SettlementPartial
}

func (d *Debtor) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)

	if d.Status == "" {
		d.Status = DebtorActive
	}

	if d.DueDate != nil {
		due := midnightUTC(*d.DueDate)
		d.DueDate = &due
	}

	return nil
}

func (d *Debtor) AfterSave(_ *gorm.DB) error {
	if d.Name == "" {
		return ErrDebtorNameRequired
	}

	if !decimal.Decimal.IsPositive(d.TotalAmount) {
		return ErrAmountNotPositive
	}

	return nil
}

// Debtors returns all debtors for a user, newest first.
func Debtors(userID uuid.UUID) ([]Debtor, error) {
	var debtors []Debtor

	err := DB.
		Where(&Debtor{UserID: userID}).
		Order("datetime(created_at) DESC").
		Find(&debtors).Error
	if err != nil {
		return nil, err
	}

	return debtors, nil
}
