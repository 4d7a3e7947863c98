package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/apperrors"
	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	portsrepo "github.com/imoveis-app/imoveis_backend/internal/core/ports/repositories"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	propertyRepo    portsrepo.PropertyReader
}

// NewTransactionService creates the transaction service. The property reader
// is used to verify the owning property exists before recording an event.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, propertyRepo portsrepo.PropertyReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	if _, err := s.propertyRepo.FindPropertyByID(ctx, req.PropertyID); err != nil {
		return nil, fmt.Errorf("failed to resolve property %s for transaction: %w", req.PropertyID, err)
	}

	transaction := domain.Transaction{
		TransactionID: uuid.NewString(),
		PropertyID:    req.PropertyID,
		Type:          domain.TransactionType(req.Type),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          req.Date,
		CreatedAt:     time.Now(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", transaction.TransactionID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("property_id", transaction.PropertyID),
		slog.String("type", string(transaction.Type)))
	return &transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *transactionService) ListTransactionsByProperty(ctx context.Context, propertyID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactionsByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for property %s: %w", propertyID, err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
