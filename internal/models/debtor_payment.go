package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DebtorPayment is a single payment a debtor made towards their debt.
type DebtorPayment struct {
	DefaultModel
	DebtorID    uuid.UUID       `json:"debtorId" example:"a1f3e2cd-b7d2-4bd8-a693-e0bd66afd327"`
	Debtor      Debtor          `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50.00"`
	PaymentDate time.Time       `json:"paymentDate" example:"2025-08-15T00:00:00Z"`
	Description string          `json:"description" example:"First half"`
}

func (p *DebtorPayment) BeforeSave(_ *gorm.DB) error {
	p.Description = strings.TrimSpace(p.Description)

	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now().In(time.UTC)
	}
	p.PaymentDate = midnightUTC(p.PaymentDate)

	return nil
}

func (p *DebtorPayment) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	// Referenced debtor has to exist
	return tx.First(&Debtor{}, p.DebtorID).Error
}

// AfterCreate keeps the parent debtor's paid amount in sync: it is always
// the sum of all recorded payments, recomputed on every insert.
func (p *DebtorPayment) AfterCreate(tx *gorm.DB) error {
	if !decimal.Decimal.IsPositive(p.Amount) {
		return ErrAmountNotPositive
	}

	var paid decimal.NullDecimal
	err := tx.Table("debtor_payments").
		Where("debtor_id = ?", p.DebtorID).
		Select("SUM(amount)").
		Row().
		Scan(&paid)
	if err != nil {
		return err
	}

	// Write the column directly. Going through the model hooks here would
	// run Debtor.AfterSave against a zero-value Debtor and roll back the
	// payment insert.
	return tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
		Model(&Debtor{}).
		Where("id = ?", p.DebtorID).
		Update("paid_amount", paid.Decimal).Error
}

// DebtorPayments returns all payments for a debtor, newest payment first.
func DebtorPayments(debtorID uuid.UUID) ([]DebtorPayment, error) {
	var payments []DebtorPayment

	err := DB.
		Where(&DebtorPayment{DebtorID: debtorID}).
		Order("datetime(payment_date) DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}
