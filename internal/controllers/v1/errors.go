package v1

import (
	"errors"
	"net/http"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Transaction errors
var (
	errTransactionKindInvalid = errors.New("the specified transaction kind is invalid")
)

// Projection errors
var (
	errMonthsInvalid       = errors.New("the months parameter must be between 1 and 120")
	errDescriptionRequired = errors.New("the transaction description must be set")
)

// Monthly balance errors
var (
	errYearInvalid = errors.New("the year parameter must be a four digit year")
)
