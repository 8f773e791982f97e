package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneydash/backend/internal/httputil"
	"github.com/moneydash/backend/internal/models"
	"github.com/moneydash/backend/internal/report"
	"github.com/moneydash/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary is the aggregated view over transactions.
type Summary struct {
	Month      *types.Month               `json:"month" example:"2024-03"` // The month the summary is restricted to, if any
	Totals     report.Totals              `json:"totals"`                  // Income, expense and balance
	Categories map[string]decimal.Decimal `json:"categories"`              // Expense sums per category
	Months     []report.MonthTotals       `json:"months"`                  // Income and expense per month, earliest first
	Budget     *report.Usage              `json:"budget"`                  // Spend vs budget, only set when a month is requested
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"could not parse the specified month, did you use YYYY-MM format?"` // The error, if any occurred
	Data  *Summary `json:"data"`                                                                             // The summary data
}

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns aggregated totals, category and month breakdowns. When a month is requested, the summary is restricted to it and includes the spend-vs-budget evaluation.
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			month	query	string	false	"Restrict the summary to this month (YYYY-MM, UTC)"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBind(&query); err != nil {
		e := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	var filter TransactionQueryFilter
	filter.Month = query.Month

	transactions, err := queryTransactions(filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	totals := report.Summarize(transactions)

	data := Summary{
		Totals:     totals,
		Categories: report.ExpenseByCategory(transactions),
		Months:     report.ByMonth(transactions),
	}

	if !query.Month.IsZero() {
		month := types.MonthOf(query.Month)
		data.Month = &month

		amount, err := models.BudgetAmount(month)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SummaryResponse{
				Error: &e,
			})
			return
		}

		usage := report.Evaluate(amount, totals.Expense)
		data.Budget = &usage
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}
