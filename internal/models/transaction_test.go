package models_test

import (
	"time"

	"github.com/moneydash/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	transaction := models.Transaction{
		Type:     "transfer",
		Amount:   decimal.NewFromInt(10),
		Category: "food",
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionAmountNegative() {
	transaction := models.Transaction{
		Type:     models.TypeExpense,
		Amount:   decimal.NewFromInt(-10),
		Category: "food",
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionAmountZero() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount: decimal.Zero,
	})

	assert.True(suite.T(), transaction.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionCategoryRequired() {
	transaction := models.Transaction{
		Type:     models.TypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "   ",
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryRequired)
}

func (suite *TestSuiteStandard) TestTransactionDateRequired() {
	transaction := models.Transaction{
		Type:     models.TypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "food",
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrDateRequired)
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:   decimal.NewFromInt(10),
		Category: "  groceries ",
		Note:     " Lunch  ",
	})

	assert.Equal(suite.T(), "groceries", transaction.Category)
	assert.Equal(suite.T(), "Lunch", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionSaveTimeUTC() {
	tz, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		assert.FailNow(suite.T(), "time zone could not be loaded", err)
	}

	transaction := suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(10),
		Date:   time.Date(2024, 3, 5, 17, 0, 0, 0, tz),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for transaction date is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionFindTimeUTC() {
	_ = suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(10),
	})

	var transaction models.Transaction
	err := models.DB.First(&transaction).Error
	if err != nil {
		assert.FailNow(suite.T(), "transaction could not be loaded", err)
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for transaction date is not UTC")
	assert.Equal(suite.T(), time.UTC, transaction.CreatedAt.Location(), "Timezone for CreatedAt is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionRoundTrip() {
	amount := decimal.RequireFromString("14.03")

	created := suite.createTestTransaction(models.Transaction{
		Type:     models.TypeIncome,
		Amount:   amount,
		Category: "salary",
		Note:     "March",
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", created.ID).Error
	if err != nil {
		assert.FailNow(suite.T(), "transaction could not be loaded", err)
	}

	assert.Equal(suite.T(), created.ID, transaction.ID)
	assert.Equal(suite.T(), models.TypeIncome, transaction.Type)
	assert.True(suite.T(), amount.Equal(transaction.Amount), "amount is %s, should be %s", transaction.Amount, amount)
	assert.Equal(suite.T(), "salary", transaction.Category)
	assert.Equal(suite.T(), "March", transaction.Note)
	assert.True(suite.T(), created.Date.Equal(transaction.Date))
}
