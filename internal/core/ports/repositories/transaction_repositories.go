package repositories

import (
	"context"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest date first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByProperty retrieves all transactions owned by one property.
	ListTransactionsByProperty(ctx context.Context, propertyID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Transactions are never updated in place, only created and deleted.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a single transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
