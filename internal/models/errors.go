package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive            = errors.New("amounts must be larger than zero")
	ErrTransactionKindInvalid       = errors.New("the transaction kind is invalid")
	ErrTransactionStartDateRequired = errors.New("the start date must be set")
	ErrRemainingAboveTotal          = errors.New("the remaining installments can not exceed the total number of installments")
	ErrEndBeforeStart               = errors.New("the end date can not be before the start date")
	ErrDebtorNameRequired           = errors.New("the debtor name must be set")
	ErrMonthlyBalanceMonthNotUnique = errors.New("you can not create multiple monthly balances for the same user and month")
)
