package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyStatus indicates the occupancy state of a property.
type PropertyStatus string

const (
	StatusOccupied    PropertyStatus = "occupied"
	StatusVacant      PropertyStatus = "vacant"
	StatusMaintenance PropertyStatus = "maintenance"
)

// IsValid reports whether the status is one of the known occupancy states.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case StatusOccupied, StatusVacant, StatusMaintenance:
		return true
	}
	return false
}

// Property represents a single leasable real-estate unit.
// Lease dates are stored as "YYYY-MM-DD" strings; an empty EndDate means
// the lease has no fixed term. Status is intentionally not cross-validated
// against tenant or date presence.
type Property struct {
	PropertyID    string          `json:"id"`
	Name          string          `json:"name"` // Building name (e.g. LUDCO, AQUARIUS)
	Unit          string          `json:"unit"`
	Area          float64         `json:"area"` // Square meters; 0 means unknown
	PropertyValue decimal.Decimal `json:"propertyValue"`
	RentValue     decimal.Decimal `json:"rentValue"`
	CondoFee      decimal.Decimal `json:"condoFee"`
	IPTU          decimal.Decimal `json:"iptu"` // Monthly property-tax charge
	ExtraFee      decimal.Decimal `json:"extraFee"`
	Tenant        string          `json:"tenant"` // Empty string = no tenant
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	DueDay        int             `json:"dueDay"` // Monthly due day, 1-31
	NetValue      decimal.Decimal `json:"netValue"`
	Notes         string          `json:"notes"`
	Status        PropertyStatus  `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
