package v1

import (
	"fmt"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DebtorEditable struct {
	Name        string          `json:"name" example:"Alex"`                                                                                    // Name of the debtor
	Description string          `json:"description" example:"Two borrowed concert tickets"`                                                     // A human readable description
	TotalAmount decimal.Decimal `json:"totalAmount" example:"253.01" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The total amount owed
	DueDate     *time.Time      `json:"dueDate" example:"2025-10-01T00:00:00Z"`                                                                 // Optional date the debt is due
	Status      models.DebtorStatus `json:"status" example:"active" default:"active"`                                                           // User managed status tag
}

// model returns the database resource for the API representation of the editable fields
func (editable DebtorEditable) model() models.Debtor {
	return models.Debtor{
		UserID:      models.LocalUser,
		Name:        editable.Name,
		Description: editable.Description,
		TotalAmount: editable.TotalAmount,
		DueDate:     editable.DueDate,
		Status:      editable.Status,
	}
}

type DebtorLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/debtors/d430d7c3-d14c-4712-9336-ee56965a6673"`          // The debtor itself
	Payments string `json:"payments" example:"https://example.com/v1/debtors/d430d7c3-d14c-4712-9336-ee56965a6673/payments"` // Payments recorded for this debtor
}

// Debtor is the representation of a Debtor in API v1.
type Debtor struct {
	models.DefaultModel
	DebtorEditable

	// PaidAmount is the sum of all recorded payments. It is maintained by
	// the backend and cannot be set via the API.
	PaidAmount decimal.Decimal `json:"paidAmount" example:"100.00"`

	RemainingAmount decimal.Decimal   `json:"remainingAmount" example:"153.01"` // The amount still owed
	Settlement      models.Settlement `json:"settlement" example:"partial"`     // Settlement state derived from the amounts

	Links DebtorLinks `json:"links"`
}

// newDebtor returns the API v1 representation of the resource
func newDebtor(c *gin.Context, model models.Debtor) Debtor {
	url := c.GetString(string(models.DBContextURL))

	return Debtor{
		DefaultModel: model.DefaultModel,
		DebtorEditable: DebtorEditable{
			Name:        model.Name,
			Description: model.Description,
			TotalAmount: model.TotalAmount,
			DueDate:     model.DueDate,
			Status:      model.Status,
		},
		PaidAmount:      model.PaidAmount,
		RemainingAmount: model.Outstanding(),
		Settlement:      model.Settlement(),
		Links: DebtorLinks{
			Self:     fmt.Sprintf("%s/v1/debtors/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/debtors/%s/payments", url, model.ID),
		},
	}
}

type DebtorListResponse struct {
	Data       []Debtor    `json:"data"`                                                          // List of debtors
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtorCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DebtorResponse `json:"data"`                                                          // List of created Debtors
}

func (t *DebtorCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, DebtorResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtorResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this debtor
	Data  *Debtor `json:"data"`                                                          // The Debtor data, if creation was successful
}

type DebtorQueryFilter struct {
	Name   string              `form:"name" filterField:"false"`   // Name contains this string
	Status models.DebtorStatus `form:"status"`                     // Filter by status tag
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first Debtor returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of Debtors to return. Defaults to 50.
}

func (f DebtorQueryFilter) model() models.Debtor {
	// This does not set the name since fuzzy matching is
	// handled in the controller function
	return DebtorEditable{
		Status: f.Status,
	}.model()
}
