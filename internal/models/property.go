package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is the database representation of a leasable unit.
// Lease dates are stored as "YYYY-MM-DD" text columns; empty string means absent.
type Property struct {
	PropertyID    string          `db:"property_id"`
	Name          string          `db:"name"`
	Unit          string          `db:"unit"`
	Area          float64         `db:"area"`
	PropertyValue decimal.Decimal `db:"property_value"`
	RentValue     decimal.Decimal `db:"rent_value"`
	CondoFee      decimal.Decimal `db:"condo_fee"`
	IPTU          decimal.Decimal `db:"iptu"`
	ExtraFee      decimal.Decimal `db:"extra_fee"`
	Tenant        string          `db:"tenant"`
	StartDate     string          `db:"start_date"`
	EndDate       string          `db:"end_date"`
	DueDay        int             `db:"due_day"`
	NetValue      decimal.Decimal `db:"net_value"`
	Notes         string          `db:"notes"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
