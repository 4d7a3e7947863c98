package repositories

import (
	"context"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
)

// PropertyReader defines read operations for property data.
type PropertyReader interface {
	// FindPropertyByID retrieves a specific property by its ID.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves all properties, oldest first.
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

// PropertyWriter defines write operations for property data.
type PropertyWriter interface {
	// SaveProperty persists a new property.
	SaveProperty(ctx context.Context, property domain.Property) error

	// UpdateProperty overwrites an existing property's mutable fields.
	UpdateProperty(ctx context.Context, property domain.Property) error

	// DeleteProperty removes a property and all transactions that reference
	// it, atomically.
	DeleteProperty(ctx context.Context, propertyID string) error
}

// PropertyRepositoryFacade combines all property-related repository interfaces.
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}

// PropertyRepositoryWithTx is a PropertyRepositoryFacade that also manages
// database transactions.
type PropertyRepositoryWithTx interface {
	PropertyRepositoryFacade
	TransactionManager
}
