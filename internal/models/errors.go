package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction validation errors
var (
	ErrTransactionTypeInvalid    = errors.New("transaction type must be income or expense")
	ErrTransactionAmountNegative = errors.New("transaction amounts must not be negative")
	ErrCategoryRequired          = errors.New("transactions must have a category")
	ErrDateRequired              = errors.New("transactions must have a date")
)

// Budget validation errors
var (
	ErrBudgetAmountNegative = errors.New("budget amounts must not be negative")
	ErrBudgetMonthNotUnique = errors.New("there can only be one budget per month")
)
