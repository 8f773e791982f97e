package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/moneydash/backend/internal/controllers/v1"
	"github.com/moneydash/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetOptions() {
	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"Collection", "http://example.com/v1/budgets", "OPTIONS, GET"},
		{"Month", "http://example.com/v1/budgets/2024-03", "OPTIONS, GET, PUT"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestBudgetGetAbsent verifies that months without a budget record read as
// an amount of 0.
func (suite *TestSuiteStandard) TestBudgetGetAbsent() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2024-03", response.Data.Month.String())
	assert.True(suite.T(), response.Data.Amount.IsZero())
	assert.Equal(suite.T(), "http://example.com/v1/budgets/2024-03", response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestBudgetUpsert() {
	response := setTestBudget(suite.T(), "2024-03", decimal.NewFromInt(200))
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(200)))

	// Setting the same month again overwrites the amount
	response = setTestBudget(suite.T(), "2024-03", decimal.NewFromInt(300))
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(300)))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var get v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &get)
	assert.True(suite.T(), get.Data.Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestBudgetUpsertIdempotent() {
	first := setTestBudget(suite.T(), "2024-03", decimal.NewFromInt(200))
	second := setTestBudget(suite.T(), "2024-03", decimal.NewFromInt(200))

	assert.True(suite.T(), first.Data.Amount.Equal(second.Data.Amount))

	// Only one record exists for the month
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
}

// TestBudgetsGetSorted verifies that the budget list is sorted by month,
// earliest first.
func (suite *TestSuiteStandard) TestBudgetsGetSorted() {
	_ = setTestBudget(suite.T(), "2024-05", decimal.NewFromInt(100))
	_ = setTestBudget(suite.T(), "2024-01", decimal.NewFromInt(200))
	_ = setTestBudget(suite.T(), "2023-12", decimal.NewFromInt(300))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	require.Len(suite.T(), list.Data, 3)
	assert.Equal(suite.T(), "2023-12", list.Data[0].Month.String())
	assert.Equal(suite.T(), "2024-01", list.Data[1].Month.String())
	assert.Equal(suite.T(), "2024-05", list.Data[2].Month.String())
}

func (suite *TestSuiteStandard) TestBudgetUpdateFails() {
	tests := []struct {
		name   string
		month  string
		body   any
		status int
	}{
		{"Invalid month", "notamonth", map[string]string{"amount": "100"}, http.StatusBadRequest},
		{"Negative amount", "2024-03", map[string]decimal.Decimal{"amount": decimal.NewFromInt(-100)}, http.StatusBadRequest},
		{"Missing amount", "2024-03", map[string]string{}, http.StatusBadRequest},
		{"Broken JSON", "2024-03", `{ "amount": 2" }`, http.StatusBadRequest},
		{"Empty body", "2024-03", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.month), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetGetInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/0-0", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "could not parse the specified month, did you use YYYY-MM format?", *response.Error)
}

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Write fails",
			func(t *testing.T) {
				setTestBudget(t, "2024-03", decimal.NewFromInt(200), http.StatusInternalServerError)
			},
		},
		{
			"List fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
