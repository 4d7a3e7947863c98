package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	portsrepo "github.com/imoveis-app/imoveis_backend/internal/core/ports/repositories"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
	"github.com/google/uuid"
)

type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepositoryFacade
}

// NewPropertyService creates the property service.
func NewPropertyService(propertyRepo portsrepo.PropertyRepositoryFacade) portssvc.PropertySvcFacade {
	return &propertyService{propertyRepo: propertyRepo}
}

var _ portssvc.PropertySvcFacade = (*propertyService)(nil)

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	now := time.Now()

	property := domain.Property{
		PropertyID:    uuid.NewString(),
		Name:          req.Name,
		Unit:          req.Unit,
		Area:          req.Area,
		PropertyValue: req.PropertyValue,
		RentValue:     req.RentValue,
		CondoFee:      req.CondoFee,
		IPTU:          req.IPTU,
		ExtraFee:      req.ExtraFee,
		Tenant:        req.Tenant,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DueDay:        req.DueDay,
		NetValue:      req.NetValue,
		Notes:         req.Notes,
		Status:        domain.PropertyStatus(req.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.propertyRepo.SaveProperty(ctx, property); err != nil {
		s.LogError(ctx, err, "Failed to save property", slog.String("property_id", property.PropertyID))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.LogInfo(ctx, "Property created", slog.String("property_id", property.PropertyID))
	return &property, nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property %s: %w", propertyID, err)
	}
	return property, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	if properties == nil {
		return []domain.Property{}, nil
	}
	return properties, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %s for update: %w", propertyID, err)
	}

	// Merge semantics: only the supplied fields change. The ID and CreatedAt
	// are immutable; UpdatedAt is refreshed on every mutation.
	req.ApplyTo(property)
	property.UpdatedAt = time.Now()

	if err := s.propertyRepo.UpdateProperty(ctx, *property); err != nil {
		s.LogError(ctx, err, "Failed to update property", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to update property %s: %w", propertyID, err)
	}

	s.LogInfo(ctx, "Property updated", slog.String("property_id", propertyID))
	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return fmt.Errorf("failed to delete property %s: %w", propertyID, err)
	}
	s.LogInfo(ctx, "Property deleted with its transactions", slog.String("property_id", propertyID))
	return nil
}
