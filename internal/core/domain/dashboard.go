package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregate summary rendered on the dashboard.
// Maintenance properties count toward TotalProperties and TotalPropertyValue
// but toward neither occupancy counter nor TotalMonthlyIncome.
type DashboardStats struct {
	TotalProperties    int             `json:"totalProperties"`
	OccupiedProperties int             `json:"occupiedProperties"`
	VacantProperties   int             `json:"vacantProperties"`
	TotalMonthlyIncome decimal.Decimal `json:"totalMonthlyIncome"`
	TotalPropertyValue decimal.Decimal `json:"totalPropertyValue"`
	ExpiringContracts  []Property      `json:"expiringContracts"`
}
