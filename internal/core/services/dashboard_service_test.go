package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockPropRepo *MockPropertyRepository
	mockTxRepo   *MockTransactionRepository
	service      portssvc.DashboardSvcFacade
	today        time.Time
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockPropRepo = new(MockPropertyRepository)
	suite.mockTxRepo = new(MockTransactionRepository)
	suite.today = time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewDashboardServiceWithClock(
		suite.mockPropRepo,
		suite.mockTxRepo,
		func() time.Time { return suite.today },
	)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats_AggregatesSnapshot() {
	ctx := context.Background()
	properties := []domain.Property{
		{
			PropertyID:    "p1",
			Name:          "AQUARIUS",
			Status:        domain.StatusOccupied,
			RentValue:     decimal.NewFromInt(1700),
			PropertyValue: decimal.NewFromInt(500000),
			EndDate:       "2025-07-15", // 44 days out
		},
		{
			PropertyID:    "p2",
			Name:          "LUDCO",
			Status:        domain.StatusVacant,
			RentValue:     decimal.NewFromInt(2000),
			PropertyValue: decimal.NewFromInt(300000),
		},
		{
			PropertyID:    "p3",
			Name:          "VITORIA",
			Status:        domain.StatusMaintenance,
			PropertyValue: decimal.NewFromInt(400000),
		},
	}

	suite.mockPropRepo.On("ListProperties", ctx).Return(properties, nil).Once()
	suite.mockTxRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(3, stats.TotalProperties)
	suite.Equal(1, stats.OccupiedProperties)
	suite.Equal(1, stats.VacantProperties)
	suite.True(stats.TotalMonthlyIncome.Equal(decimal.NewFromInt(1700)), "vacant rent must not count")
	suite.True(stats.TotalPropertyValue.Equal(decimal.NewFromInt(1200000)))
	suite.Require().Len(stats.ExpiringContracts, 1)
	suite.Equal("p1", stats.ExpiringContracts[0].PropertyID)
	suite.mockPropRepo.AssertExpectations(suite.T())
	suite.mockTxRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats_EmptyPortfolio() {
	ctx := context.Background()

	suite.mockPropRepo.On("ListProperties", ctx).Return([]domain.Property{}, nil).Once()
	suite.mockTxRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, stats.TotalProperties)
	suite.True(stats.TotalMonthlyIncome.IsZero())
	suite.True(stats.TotalPropertyValue.IsZero())
	suite.Empty(stats.ExpiringContracts)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats_PropertyListError() {
	ctx := context.Background()

	suite.mockPropRepo.On("ListProperties", ctx).Return(nil, assert.AnError).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, assert.AnError)
	suite.mockTxRepo.AssertNotCalled(suite.T(), "ListTransactions", ctx)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats_TransactionListError() {
	ctx := context.Background()

	suite.mockPropRepo.On("ListProperties", ctx).Return([]domain.Property{}, nil).Once()
	suite.mockTxRepo.On("ListTransactions", ctx).Return(nil, assert.AnError).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, assert.AnError)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
