package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction adds to or subtracts
// from the balance. Amounts are always stored as magnitudes, the sign is
// implied by the type.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// TransactionTypes are all valid transaction types.
var TransactionTypes = []TransactionType{TypeIncome, TypeExpense}

// Transaction represents a single income or expense record.
type Transaction struct {
	DefaultModel
	Type     TransactionType `json:"type" example:"expense"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Category string          `json:"category" example:"food"`
	Note     string          `json:"note" example:"Lunch" default:""`
	Date     time.Time       `json:"date" example:"2024-03-05T00:00:00Z"`
}

// BeforeSave validates the transaction and normalizes its date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)

	if !slices.Contains(TransactionTypes, t.Type) {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Date.IsZero() {
		return ErrDateRequired
	}
	t.Date = t.Date.In(time.UTC)

	return nil
}

// AfterFind sets the timezone of the date to UTC, see DefaultModel.AfterFind.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}
