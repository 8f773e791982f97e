package v1

import (
	"errors"
	"net/http"

	"github.com/moneydash/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
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

// Transaction errors
var (
	errTransactionTypeInvalid = errors.New("the specified transaction type is invalid, use income or expense")
)

// Budget errors
var (
	errBudgetAmountRequired = errors.New("the amount parameter must be set")
)
