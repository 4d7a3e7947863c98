package mapping

import (
	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/imoveis-app/imoveis_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		PropertyID:    d.PropertyID,
		Type:          string(d.Type),
		Category:      d.Category,
		Description:   d.Description,
		Amount:        d.Amount,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		PropertyID:    m.PropertyID,
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
