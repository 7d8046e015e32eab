package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionKind determines how a transaction enters the monthly math.
type TransactionKind string

const (
	KindCredit       TransactionKind = "credit"
	KindFixedExpense TransactionKind = "fixed_expense"
	KindInstallment  TransactionKind = "installment"
	KindLoan         TransactionKind = "loan"
)

// Valid reports whether the kind is one of the known transaction kinds.
func (k TransactionKind) Valid() bool {
	return k == KindCredit || k == KindFixedExpense || k == KindInstallment || k == KindLoan
}

// Transaction is a recurring financial record: an income source, a fixed
// expense, an installment purchase or a loan.
//
// The amount is always positive, the kind implies the sign.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`
	Kind        TransactionKind `json:"kind" example:"fixed_expense"`
	Description string          `json:"description" example:"Streaming subscription"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"24.90"`
	Category    string          `json:"category" example:"subscription" default:"other"`
	StartDate   time.Time       `json:"startDate" example:"2025-07-01T00:00:00Z"`
	EndDate     *time.Time      `json:"endDate" example:"2025-12-01T00:00:00Z"`

	// Installments is the number of consecutive months an installment
	// purchase applies, anchored at the month of StartDate.
	Installments int `json:"installments" example:"6" default:"1"`

	// RemainingInstallments is informational only. Nothing decrements it
	// over time and the forecast never consults it; the activation window
	// is derived from Installments and the start month alone.
	RemainingInstallments int `json:"remainingInstallments" example:"4" default:"1"`

	// Active defaults to true at the database level so that records
	// created outside the API enter projections like everything else.
	Active bool `json:"active" gorm:"default:true" example:"true" default:"true"`
}

// midnightUTC truncates a timestamp to the start of its day in UTC.
// Dates on transactions are date-granular, the time of day carries no meaning.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = "other"
	}

	if t.Installments < 1 {
		t.Installments = 1
	}

	if t.RemainingInstallments < 1 {
		t.RemainingInstallments = 1
	}

	t.StartDate = midnightUTC(t.StartDate)
	if t.EndDate != nil {
		e := midnightUTC(*t.EndDate)
		t.EndDate = &e
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Kind.Valid() {
		return ErrTransactionKindInvalid
	}

	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrAmountNotPositive
	}

	if t.StartDate.IsZero() {
		return ErrTransactionStartDateRequired
	}

	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return ErrEndBeforeStart
	}

	if t.RemainingInstallments > t.Installments {
		return ErrRemainingAboveTotal
	}

	return nil
}

func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.StartDate = t.StartDate.In(time.UTC)
	if t.EndDate != nil {
		e := t.EndDate.In(time.UTC)
		t.EndDate = &e
	}

	return nil
}

// Transactions returns all transactions for a user, newest first.
//
// This is the snapshot the forecast package consumes, so it is deliberately
// unfiltered by date or active flag; activation is decided per month.
func Transactions(userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction

	err := DB.
		Where(&Transaction{UserID: userID}).
		Order("datetime(created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
