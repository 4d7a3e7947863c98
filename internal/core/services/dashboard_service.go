package services

import (
	"context"
	"fmt"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	portsrepo "github.com/imoveis-app/imoveis_backend/internal/core/ports/repositories"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/utils/leases"
)

type dashboardService struct {
	BaseService
	propertyRepo    portsrepo.PropertyReader
	transactionRepo portsrepo.TransactionReader
	now             func() time.Time
}

// NewDashboardService creates the dashboard service. "now" defaults to the
// wall clock; tests inject a fixed clock through NewDashboardServiceWithClock.
func NewDashboardService(propertyRepo portsrepo.PropertyReader, transactionRepo portsrepo.TransactionReader) portssvc.DashboardSvcFacade {
	return NewDashboardServiceWithClock(propertyRepo, transactionRepo, time.Now)
}

// NewDashboardServiceWithClock creates the dashboard service with an explicit clock.
func NewDashboardServiceWithClock(propertyRepo portsrepo.PropertyReader, transactionRepo portsrepo.TransactionReader, now func() time.Time) portssvc.DashboardSvcFacade {
	return &dashboardService{
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
		now:             now,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetDashboardStats fetches a fresh snapshot of the portfolio and derives the
// dashboard aggregates from it. Nothing is cached: every call re-reads both
// repositories so mutations are always reflected.
func (s *dashboardService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot properties for dashboard: %w", err)
	}

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions for dashboard: %w", err)
	}

	stats := leases.ComputeDashboardStats(properties, transactions, s.now())
	return &stats, nil
}
