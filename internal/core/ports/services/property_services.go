package services

import (
	"context"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
)

// PropertySvcFacade defines the business operations for properties.
type PropertySvcFacade interface {
	// CreateProperty validates and persists a new property.
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error)

	// GetPropertyByID retrieves a single property.
	GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves the full portfolio snapshot.
	ListProperties(ctx context.Context) ([]domain.Property, error)

	// UpdateProperty applies a partial update: only the fields set in req
	// change, and UpdatedAt is refreshed.
	UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error)

	// DeleteProperty removes a property and cascades to its transactions.
	DeleteProperty(ctx context.Context, propertyID string) error
}
