package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/moneydash/backend/internal/controllers/v1"
	"github.com/moneydash/backend/internal/models"
	"github.com/moneydash/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Data.Month)
	assert.Nil(suite.T(), response.Data.Budget)
	assert.True(suite.T(), response.Data.Totals.Income.IsZero())
	assert.True(suite.T(), response.Data.Totals.Expense.IsZero())
	assert.True(suite.T(), response.Data.Totals.Balance.IsZero())
	assert.Empty(suite.T(), response.Data.Categories)
	assert.Empty(suite.T(), response.Data.Months)
}

// TestSummaryMonth verifies the month dashboard: totals, the category
// breakdown and the spend-vs-budget evaluation.
func (suite *TestSuiteStandard) TestSummaryMonth() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TypeExpense,
		Amount:   decimal.NewFromInt(50),
		Category: "food",
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TypeIncome,
		Amount:   decimal.NewFromInt(1000),
		Category: "salary",
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	_ = setTestBudget(suite.T(), "2024-03", decimal.NewFromInt(200))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	data := *response.Data

	require.NotNil(suite.T(), data.Month)
	assert.Equal(suite.T(), "2024-03", data.Month.String())

	assert.True(suite.T(), data.Totals.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), data.Totals.Expense.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), data.Totals.Balance.Equal(decimal.NewFromInt(950)))

	require.Contains(suite.T(), data.Categories, "food")
	assert.True(suite.T(), data.Categories["food"].Equal(decimal.NewFromInt(50)))
	assert.NotContains(suite.T(), data.Categories, "salary", "income must not show up in the category breakdown")

	require.NotNil(suite.T(), data.Budget)
	assert.True(suite.T(), data.Budget.Budget.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), data.Budget.Spent.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), data.Budget.Remaining.Equal(decimal.NewFromInt(150)))
	assert.Equal(suite.T(), int64(25), data.Budget.PercentUsed)
	assert.False(suite.T(), data.Budget.Over)
}

// TestSummaryMonthFilters verifies that the month restriction excludes
// transactions of other months.
func (suite *TestSuiteStandard) TestSummaryMonthFilters() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(50),
		Date:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(70),
		Date:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Totals.Expense.Equal(decimal.NewFromInt(50)))
	require.Len(suite.T(), response.Data.Months, 1)
	assert.Equal(suite.T(), "2024-03", response.Data.Months[0].Month.String())
}

// TestSummaryMonths verifies the per-month breakdown over all transactions.
func (suite *TestSuiteStandard) TestSummaryMonths() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(30),
		Date:   time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TypeIncome,
		Amount:   decimal.NewFromInt(1000),
		Category: "salary",
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Months, 2)

	// Months are sorted ascending
	assert.Equal(suite.T(), "2024-03", response.Data.Months[0].Month.String())
	assert.True(suite.T(), response.Data.Months[0].Income.Equal(decimal.NewFromInt(1000)))
	assert.Equal(suite.T(), "2024-04", response.Data.Months[1].Month.String())
	assert.True(suite.T(), response.Data.Months[1].Expense.Equal(decimal.NewFromInt(30)))
}

// TestSummaryOverspent verifies the evaluation when more is spent than
// budgeted.
func (suite *TestSuiteStandard) TestSummaryOverspent() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(150),
		Date:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	_ = setTestBudget(suite.T(), "2024-03", decimal.NewFromInt(100))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data.Budget)
	assert.True(suite.T(), response.Data.Budget.Remaining.IsZero(), "remaining must not be negative")
	assert.Equal(suite.T(), int64(150), response.Data.Budget.PercentUsed)
	assert.Equal(suite.T(), int64(100), response.Data.Budget.BarFill)
	assert.True(suite.T(), response.Data.Budget.Over)
}

// TestSummaryNoBudget verifies the evaluation for a month without a budget.
func (suite *TestSuiteStandard) TestSummaryNoBudget() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(50),
		Date:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data.Budget)
	assert.True(suite.T(), response.Data.Budget.Budget.IsZero())
	assert.Equal(suite.T(), int64(0), response.Data.Budget.PercentUsed, "a budget of 0 must not report percentages")
	assert.False(suite.T(), response.Data.Budget.Over)
}

func (suite *TestSuiteStandard) TestSummaryInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSummaryDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
