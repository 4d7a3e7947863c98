package services

import (
	"context"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
)

// TransactionSvcFacade defines the business operations for transactions.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new income/expense event.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByProperty retrieves the transactions owned by one property.
	ListTransactionsByProperty(ctx context.Context, propertyID string) ([]domain.Transaction, error)

	// DeleteTransaction removes a single transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
