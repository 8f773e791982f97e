package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moneydash/backend/internal/models"
	"github.com/moneydash/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	// The spending goal for the month. An amount of 0 clears the budget.
	Amount *decimal.Decimal `json:"amount" example:"200" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/2024-03"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	Month  types.Month     `json:"month" example:"2024-03"` // The month the budget is for
	Amount decimal.Decimal `json:"amount" example:"200"`    // The spending goal for the month
	Links  BudgetLinks     `json:"links"`
}

// newBudget returns the API v1 representation for a month and its amount.
//
// There is no database resource for months without a budget record, therefore
// the representation is built from the month and amount, not from a model.
func newBudget(c *gin.Context, month types.Month, amount decimal.Decimal) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		Month:  month,
		Amount: amount,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, month),
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"could not parse the specified month, did you use YYYY-MM format?"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                                             // The Budget data
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                                             // List of budgets
	Error *string  `json:"error" example:"could not parse the specified month, did you use YYYY-MM format?"` // The error, if any occurred
}
