package v1

import (
	"fmt"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DebtorPaymentEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"50.00" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount paid
	PaymentDate time.Time       `json:"paymentDate" example:"2025-08-14T00:00:00Z"`                                                          // Date of the payment, defaults to today
	Description string          `json:"description" example:"Bank transfer"`                                                                 // A human readable description
}

// model returns the database resource for the API representation of the editable fields
func (editable DebtorPaymentEditable) model(debtor models.Debtor) models.DebtorPayment {
	return models.DebtorPayment{
		DebtorID:    debtor.ID,
		Amount:      editable.Amount,
		PaymentDate: editable.PaymentDate,
		Description: editable.Description,
	}
}

type DebtorPaymentLinks struct {
	Debtor string `json:"debtor" example:"https://example.com/v1/debtors/d430d7c3-d14c-4712-9336-ee56965a6673"` // The debtor the payment belongs to
}

// DebtorPayment is the representation of a DebtorPayment in API v1.
type DebtorPayment struct {
	models.DefaultModel
	DebtorPaymentEditable
	Links DebtorPaymentLinks `json:"links"`
}

// newDebtorPayment returns the API v1 representation of the resource
func newDebtorPayment(c *gin.Context, model models.DebtorPayment) DebtorPayment {
	url := c.GetString(string(models.DBContextURL))

	return DebtorPayment{
		DefaultModel: model.DefaultModel,
		DebtorPaymentEditable: DebtorPaymentEditable{
			Amount:      model.Amount,
			PaymentDate: model.PaymentDate,
			Description: model.Description,
		},
		Links: DebtorPaymentLinks{
			Debtor: fmt.Sprintf("%s/v1/debtors/%s", url, model.DebtorID),
		},
	}
}

type DebtorPaymentListResponse struct {
	Data  []DebtorPayment `json:"data"`                                                          // List of payments
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebtorPaymentResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *DebtorPayment `json:"data"`                                                          // The payment data, if creation was successful

	// Debtor is the updated debtor after the payment was applied.
	Debtor *Debtor `json:"debtor"`
}
