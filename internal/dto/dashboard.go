package dto

import (
	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the aggregate summary returned for the dashboard.
type DashboardStatsResponse struct {
	TotalProperties    int                `json:"totalProperties"`
	OccupiedProperties int                `json:"occupiedProperties"`
	VacantProperties   int                `json:"vacantProperties"`
	TotalMonthlyIncome decimal.Decimal    `json:"totalMonthlyIncome"`
	TotalPropertyValue decimal.Decimal    `json:"totalPropertyValue"`
	ExpiringContracts  []PropertyResponse `json:"expiringContracts"`
}

// ToDashboardStatsResponse converts domain DashboardStats to the response DTO.
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalProperties:    stats.TotalProperties,
		OccupiedProperties: stats.OccupiedProperties,
		VacantProperties:   stats.VacantProperties,
		TotalMonthlyIncome: stats.TotalMonthlyIncome,
		TotalPropertyValue: stats.TotalPropertyValue,
		ExpiringContracts:  ToListPropertyResponse(stats.ExpiringContracts),
	}
}
