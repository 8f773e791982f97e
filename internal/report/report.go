// Package report implements pure aggregations over transaction records.
//
// All functions operate on an already fetched set of transactions and never
// access the database, so they can be tested in isolation.
package report

import (
	"strings"

	"github.com/moneydash/backend/internal/models"
	"github.com/moneydash/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FallbackCategory is the bucket that expenses without a category are
// reported under.
const FallbackCategory = "other"

// Totals are the summed amounts for a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1000"`  // Sum of all income amounts
	Expense decimal.Decimal `json:"expense" example:"50"`   // Sum of all expense amounts
	Balance decimal.Decimal `json:"balance" example:"950"`  // Income minus expense
}

// Summarize sums up the transactions by type.
func Summarize(transactions []models.Transaction) Totals {
	totals := Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TypeIncome:
			totals.Income = totals.Income.Add(transaction.Amount)
		case models.TypeExpense:
			totals.Expense = totals.Expense.Add(transaction.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// ExpenseByCategory sums the expense transactions per category.
//
// Income is never included. Expenses without a category are reported under
// FallbackCategory. Categories that do not sum to a positive amount are
// omitted since they would not show up in a category breakdown anyway.
func ExpenseByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	categories := make(map[string]decimal.Decimal)

	for _, transaction := range transactions {
		if transaction.Type != models.TypeExpense {
			continue
		}

		name := transaction.Category
		if name == "" {
			name = FallbackCategory
		}

		categories[name] = categories[name].Add(transaction.Amount)
	}

	for name, sum := range categories {
		if !sum.IsPositive() {
			delete(categories, name)
		}
	}

	return categories
}

// MonthTotals are the summed amounts for a single calendar month.
type MonthTotals struct {
	Month   types.Month     `json:"month" example:"2024-03"`  // The calendar month, in UTC
	Income  decimal.Decimal `json:"income" example:"1000"`    // Sum of the income amounts in the month
	Expense decimal.Decimal `json:"expense" example:"50"`     // Sum of the expense amounts in the month
}

// ByMonth buckets the transactions by the UTC calendar month of their date
// and sums income and expense per bucket. The result is ordered by month,
// ascending.
func ByMonth(transactions []models.Transaction) []MonthTotals {
	index := make(map[types.Month]int)
	months := make([]MonthTotals, 0)

	for _, transaction := range transactions {
		month := types.MonthOf(transaction.Date)

		i, ok := index[month]
		if !ok {
			months = append(months, MonthTotals{
				Month:   month,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
			i = len(months) - 1
			index[month] = i
		}

		switch transaction.Type {
		case models.TypeIncome:
			months[i].Income = months[i].Income.Add(transaction.Amount)
		case models.TypeExpense:
			months[i].Expense = months[i].Expense.Add(transaction.Amount)
		}
	}

	// Lexicographic order on the YYYY-MM key is chronological order
	slices.SortFunc(months, func(a, b MonthTotals) int {
		return strings.Compare(a.Month.String(), b.Month.String())
	})

	return months
}

// Usage is the spend-vs-budget evaluation for a single month.
type Usage struct {
	Budget      decimal.Decimal `json:"budget" example:"200"`   // The budget amount for the month
	Spent       decimal.Decimal `json:"spent" example:"50"`     // The expense total for the month
	Remaining   decimal.Decimal `json:"remaining" example:"150"` // Budget minus spent, never negative
	PercentUsed int64           `json:"percentUsed" example:"25"` // Rounded percentage of the budget that is spent, not clamped
	BarFill     int64           `json:"barFill" example:"25"`    // PercentUsed clamped to 100 for display purposes
	Over        bool            `json:"over" example:"false"`    // Whether the budget is overspent
}

// Evaluate combines a month's budget amount with its expense total.
//
// Overspending never yields a negative remaining amount, it is signalled via
// PercentUsed being larger than 100 and the Over flag. A budget of 0 counts
// as no budget: PercentUsed stays 0.
func Evaluate(budget, spent decimal.Decimal) Usage {
	usage := Usage{
		Budget:    budget,
		Spent:     spent,
		Remaining: decimal.Zero,
	}

	if remaining := budget.Sub(spent); remaining.IsPositive() {
		usage.Remaining = remaining
	}

	if budget.IsPositive() {
		usage.PercentUsed = spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	usage.BarFill = usage.PercentUsed
	if usage.BarFill > 100 {
		usage.BarFill = 100
	}

	usage.Over = usage.PercentUsed > 100
	return usage
}
