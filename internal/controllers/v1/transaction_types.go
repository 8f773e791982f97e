package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneydash/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type models.TransactionType `json:"type" example:"expense" enums:"income,expense"` // Whether the amount adds to or subtracts from the balance

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction, always a magnitude

	Category string    `json:"category" example:"food"`                 // The category of the transaction
	Note     string    `json:"note" example:"Lunch" default:""`         // A note
	Date     time.Time `json:"date" example:"2024-03-05T00:00:00Z"`     // Date of the transaction, independent of the creation time
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:     editable.Type,
		Amount:   editable.Amount,
		Category: editable.Category,
		Note:     editable.Note,
		Date:     editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:     model.Type,
			Amount:   model.Amount,
			Category: model.Category,
			Note:     model.Note,
			Date:     model.Date,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The Transaction data
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionQueryFilter struct {
	Month    time.Time              `form:"month" time_format:"2006-01" time_utc:"1"` // Only transactions in this calendar month (YYYY-MM, UTC)
	Type     models.TransactionType `form:"type"`                                     // Filter by transaction type
	Category string                 `form:"category"`                                 // Filter by category, glob patterns are supported
	Note     string                 `form:"note"`                                     // Note contains this string
	Offset   uint                   `form:"offset"`                                   // The offset of the first Transaction returned. Defaults to 0.
	Limit    int                    `form:"limit"`                                    // Maximum number of Transactions to return. Defaults to all.
}
