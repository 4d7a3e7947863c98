package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of an income/expense event.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	PropertyID    string          `db:"property_id"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Date          string          `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
}
