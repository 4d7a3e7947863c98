package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/apperrors"
	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/core/services"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PropertyRepository ---
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

// --- Test Suite ---
type PropertyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPropertyRepository
	service  portssvc.PropertySvcFacade
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPropertyRepository)
	suite.service = services.NewPropertyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PropertyServiceTestSuite) TestCreateProperty_Success() {
	ctx := context.Background()
	req := dto.CreatePropertyRequest{
		Name:      "AQUARIUS",
		Unit:      "1305",
		Area:      50.05,
		RentValue: decimal.NewFromInt(1700),
		Tenant:    "JULIETE",
		StartDate: "2025-01-20",
		EndDate:   "2027-12-15",
		DueDay:    21,
		Status:    "occupied",
	}

	suite.mockRepo.On("SaveProperty", ctx, mock.MatchedBy(func(p domain.Property) bool {
		return p.Name == req.Name &&
			p.Unit == req.Unit &&
			p.Status == domain.StatusOccupied &&
			p.PropertyID != "" &&
			!p.CreatedAt.IsZero() &&
			p.UpdatedAt.Equal(p.CreatedAt)
	})).Return(nil).Once()

	property, err := suite.service.CreateProperty(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(property)
	suite.Equal(req.Name, property.Name)
	suite.Equal(domain.StatusOccupied, property.Status)
	suite.NotEmpty(property.PropertyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_SaveError() {
	ctx := context.Background()
	req := dto.CreatePropertyRequest{Name: "LUDCO", DueDay: 1, Status: "vacant"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveProperty", ctx, mock.AnythingOfType("domain.Property")).Return(expectedErr).Once()

	property, err := suite.service.CreateProperty(ctx, req)

	suite.Require().Error(err)
	suite.Nil(property)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestUpdateProperty_MergesOnlySuppliedFields() {
	ctx := context.Background()
	propertyID := uuid.NewString()
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.Property{
		PropertyID: propertyID,
		Name:       "VITORIA",
		Unit:       "202",
		Tenant:     "",
		Status:     domain.StatusVacant,
		RentValue:  decimal.NewFromInt(2700),
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	tenant := "CARLOS"
	status := "occupied"
	req := dto.UpdatePropertyRequest{
		Tenant: &tenant,
		Status: &status,
	}

	suite.mockRepo.On("FindPropertyByID", ctx, propertyID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProperty", ctx, mock.MatchedBy(func(p domain.Property) bool {
		return p.PropertyID == propertyID &&
			p.Tenant == "CARLOS" &&
			p.Status == domain.StatusOccupied &&
			p.Name == "VITORIA" && // untouched
			p.RentValue.Equal(decimal.NewFromInt(2700)) && // untouched
			p.CreatedAt.Equal(createdAt) && // immutable
			p.UpdatedAt.After(createdAt) // refreshed
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProperty(ctx, propertyID, req)

	suite.Require().NoError(err)
	suite.Equal("CARLOS", updated.Tenant)
	suite.Equal(domain.StatusOccupied, updated.Status)
	suite.Equal("VITORIA", updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestUpdateProperty_NotFound() {
	ctx := context.Background()
	propertyID := uuid.NewString()

	suite.mockRepo.On("FindPropertyByID", ctx, propertyID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateProperty(ctx, propertyID, dto.UpdatePropertyRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestDeleteProperty_Success() {
	ctx := context.Background()
	propertyID := uuid.NewString()

	suite.mockRepo.On("DeleteProperty", ctx, propertyID).Return(nil).Once()

	err := suite.service.DeleteProperty(ctx, propertyID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestDeleteProperty_NotFound() {
	ctx := context.Background()
	propertyID := uuid.NewString()

	suite.mockRepo.On("DeleteProperty", ctx, propertyID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProperty(ctx, propertyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestListProperties_EmptyNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListProperties", ctx).Return(nil, nil).Once()

	properties, err := suite.service.ListProperties(ctx)

	suite.Require().NoError(err)
	suite.NotNil(properties)
	suite.Empty(properties)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
