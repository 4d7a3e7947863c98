package dto

import (
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record an income or
// expense event. Amount must be strictly positive; the service enforces this
// on top of binding since decimals bind through JSON numbers or strings.
type CreateTransactionRequest struct {
	PropertyID  string          `json:"propertyId" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"propertyId"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.TransactionID,
		PropertyID:  t.PropertyID,
		Type:        string(t.Type),
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain Transactions to response DTOs.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}

// CategoryOptionsResponse lists the suggested categories for one transaction type.
type CategoryOptionsResponse struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}
