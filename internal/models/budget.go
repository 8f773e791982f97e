package models

import (
	"errors"
	"time"

	"github.com/moneydash/backend/internal/cache"
	"github.com/moneydash/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending goal for a single calendar month.
//
// There is at most one budget per month. A month without a budget record
// reads as a budget of 0, this is not an error.
type Budget struct {
	DefaultModel
	Month  types.Month     `json:"month" gorm:"uniqueIndex" example:"2024-03"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"200"`
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// budgetCache is a read-through cache for budget amounts so that dashboard
// reads for the same month do not hit the database every time. It is written
// on every successful budget write, cache and store never diverge.
//
// It is recreated on Connect since cached amounts are tied to the database
// they were read from.
var budgetCache = newBudgetCache()

func newBudgetCache() *cache.Memory[decimal.Decimal] {
	return cache.NewMemory[decimal.Decimal](time.Minute)
}

// BudgetAmount returns the stored amount for the month.
//
// A month without a budget record is not an error, it reads as an amount
// of 0.
func BudgetAmount(month types.Month) (decimal.Decimal, error) {
	if amount, ok := budgetCache.Get(month.String()); ok {
		return amount, nil
	}

	var budget Budget
	err := DB.Where("month = ?", month).First(&budget).Error
	if errors.Is(err, ErrResourceNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	budgetCache.Set(month.String(), budget.Amount)
	return budget.Amount, nil
}

// SetBudgetAmount creates or overwrites the single budget record for the
// month and returns it. Concurrent writes to the same month are resolved
// last-write-wins.
func SetBudgetAmount(month types.Month, amount decimal.Decimal) (Budget, error) {
	var budget Budget

	err := DB.Where("month = ?", month).First(&budget).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Budget{}, err
	}

	if errors.Is(err, ErrResourceNotFound) {
		budget = Budget{Month: month, Amount: amount}
		err = DB.Create(&budget).Error
	} else {
		budget.Amount = amount
		err = DB.Save(&budget).Error
	}

	if err != nil {
		return Budget{}, err
	}

	budgetCache.Set(month.String(), budget.Amount)
	return budget, nil
}
