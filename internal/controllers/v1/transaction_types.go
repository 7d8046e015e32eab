package v1

import (
	"fmt"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Kind        models.TransactionKind `json:"kind" example:"installment"`                   // What the transaction is: credit, fixed_expense, installment or loan
	Description string                 `json:"description" example:"New washing machine"`    // A human readable description
	Category    string                 `json:"category" example:"household" default:"other"` // Free-form category

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"248.36" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The monthly amount, always positive

	StartDate time.Time  `json:"startDate" example:"2025-07-01T00:00:00Z"` // First date the transaction applies
	EndDate   *time.Time `json:"endDate" example:"2025-12-01T00:00:00Z"`   // Optional last date the transaction applies

	Installments          int `json:"installments" example:"6" default:"1"`   // Number of monthly installments, anchored at the start month
	RemainingInstallments int `json:"remainingInstallments" example:"6"`      // Informational counter, defaults to the installment count

	Active *bool `json:"active" example:"true" default:"true"` // Whether the transaction enters projections
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	// Transactions are active unless explicitly disabled
	active := true
	if editable.Active != nil {
		active = *editable.Active
	}

	// A new installment purchase starts with all installments remaining
	remaining := editable.RemainingInstallments
	if remaining == 0 {
		remaining = editable.Installments
	}

	return models.Transaction{
		UserID:                models.LocalUser,
		Kind:                  editable.Kind,
		Description:           editable.Description,
		Category:              editable.Category,
		Amount:                editable.Amount,
		StartDate:             editable.StartDate,
		EndDate:               editable.EndDate,
		Installments:          editable.Installments,
		RemainingInstallments: remaining,
		Active:                active,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	active := model.Active

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Kind:                  model.Kind,
			Description:           model.Description,
			Category:              model.Category,
			Amount:                model.Amount,
			StartDate:             model.StartDate,
			EndDate:               model.EndDate,
			Installments:          model.Installments,
			RemainingInstallments: model.RemainingInstallments,
			Active:                &active,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Kind              models.TransactionKind `form:"kind"`                                  // Filter by transaction kind
	Category          string                 `form:"category"`                              // Filter by category
	Description       string                 `form:"description" filterField:"false"`       // Description contains this string
	Active            bool                   `form:"active"`                                // Filter by active state
	Amount            decimal.Decimal        `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	if f.Kind != "" && !f.Kind.Valid() {
		return models.Transaction{}, errTransactionKindInvalid
	}

	// This does not set the string fields since they are
	// handled in the controller function
	return TransactionEditable{
		Kind:     f.Kind,
		Category: f.Category,
		Amount:   f.Amount,
		Active:   &f.Active,
	}.model(), nil
}
