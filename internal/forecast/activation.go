// Package forecast derives monthly figures and multi-month projections from
// a snapshot of transactions.
//
// Every function in this package is pure: the caller passes the transaction
// set in, nothing is read from or written to the database, and the same
// input always produces the same output. The HTTP layer decides which user's
// transactions are handed over and at which month a projection is anchored.
package forecast

import (
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/shopspring/decimal"
)

// ActiveInMonth reports whether a credit or fixed expense contributes its
// amount in the given month.
//
// The transaction is active from its start date onwards, open-ended unless
// an end date is set. The comparison anchor is the first day of the month,
// so any end date within a month keeps that whole month active.
func ActiveInMonth(t models.Transaction, month types.Month) bool {
	if !t.Active {
		return false
	}

	check := time.Time(month)
	if check.Before(t.StartDate) {
		return false
	}

	if t.EndDate != nil && check.After(*t.EndDate) {
		return false
	}

	return true
}

// InstallmentActiveInMonth reports whether an installment purchase
// contributes its amount in the given month.
//
// The activation window is a fixed span of Installments consecutive
// calendar months anchored at the month of the start date. The stored
// remaining installment count is deliberately not consulted: nothing ever
// decrements it, so the elapsed months since the start are the only
// reliable signal.
func InstallmentActiveInMonth(t models.Transaction, month types.Month) bool {
	if !t.Active || t.Kind != models.KindInstallment {
		return false
	}

	installments := t.Installments
	if installments < 1 {
		installments = 1
	}

	monthsSinceStart := month.Sub(types.MonthOf(t.StartDate))
	return monthsSinceStart >= 0 && monthsSinceStart < installments
}

// Contribution returns the amount the transaction adds to the given month,
// or zero when it is not active in it. Amounts are never prorated. Loans
// have no activation rule and always contribute zero, see the note on
// TransactionsForMonth.
func Contribution(t models.Transaction, month types.Month) decimal.Decimal {
	switch t.Kind {
	case models.KindCredit, models.KindFixedExpense:
		if ActiveInMonth(t, month) {
			return t.Amount
		}
	case models.KindInstallment:
		if InstallmentActiveInMonth(t, month) {
			return t.Amount
		}
	}

	return decimal.Zero
}
