package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Fixed category vocabularies offered by the UI per transaction type.
// Category itself is free-form at the storage layer.
var (
	IncomeCategories = []string{
		"Aluguel", "Reajuste", "Multa", "Caução", "Outros",
	}
	ExpenseCategories = []string{
		"Condomínio", "IPTU", "Manutenção", "Reforma",
		"Comissão Imobiliária", "Seguro", "Documentação", "Outros",
	}
)

// CategoryOptions returns the suggested category list for a transaction type.
func CategoryOptions(t TransactionType) []string {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// Transaction represents a single dated income or expense event tied to one
// property. The type is fixed at creation and transactions are never updated
// in place, only created and deleted.
type Transaction struct {
	TransactionID string          `json:"id"`
	PropertyID    string          `json:"propertyId"` // Owning property reference
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Strictly positive
	Date          string          `json:"date"`   // "YYYY-MM-DD"
	CreatedAt     time.Time       `json:"createdAt"`
}
