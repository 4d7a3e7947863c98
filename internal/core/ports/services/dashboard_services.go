package services

import (
	"context"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
)

// DashboardSvcFacade derives the aggregate dashboard view from a fresh
// snapshot of the portfolio.
type DashboardSvcFacade interface {
	// GetDashboardStats fetches the current snapshot and computes the
	// dashboard summary, using the wall-clock date for lease thresholds.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
