// Package leases holds the pure lease-expiration and dashboard aggregation
// logic. Everything here is a function of its inputs plus an explicit "today",
// so callers (and tests) control the clock.
package leases

import (
	"math"
	"sort"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NeverExpires is returned for leases with no fixed end date, and for end
// dates that cannot be parsed. An unparseable date must never flag a lease,
// so parsing fails open.
const NeverExpires = math.MaxInt32

// Status classifies how close a lease is to its end date.
type Status string

const (
	Expired  Status = "expired"
	Critical Status = "critical"
	Warning  Status = "warning"
	OK       Status = "ok"
)

const (
	criticalWindowDays = 30
	expiringWindowDays = 90
)

const dateLayout = "2006-01-02"

// DaysUntilExpiration returns the signed calendar-day difference between
// endDate and today. Negative means the lease already expired. Empty or
// malformed endDate returns NeverExpires.
func DaysUntilExpiration(endDate string, today time.Time) int {
	if endDate == "" {
		return NeverExpires
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return NeverExpires
	}
	// Compare dates at midnight UTC so the result is whole calendar days,
	// not elapsed hours.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(day).Hours() / 24)
}

// ExpirationStatus maps an end date onto an alert level:
// expired (< 0 days), critical (0-30), warning (31-90), ok (> 90 or no end date).
func ExpirationStatus(endDate string, today time.Time) Status {
	days := DaysUntilExpiration(endDate, today)
	switch {
	case days < 0:
		return Expired
	case days <= criticalWindowDays:
		return Critical
	case days <= expiringWindowDays:
		return Warning
	default:
		return OK
	}
}

// ComputeDashboardStats aggregates a snapshot of the portfolio into the
// dashboard summary. The transactions slice is part of the snapshot but no
// aggregate currently reads it.
//
// Rules:
//   - maintenance properties count in TotalProperties and TotalPropertyValue
//     but in neither occupancy counter nor TotalMonthlyIncome;
//   - ExpiringContracts holds occupied properties whose lease ends within
//     0-90 days, soonest first, ties keeping input order;
//   - already-expired leases (days < 0) are excluded from ExpiringContracts.
func ComputeDashboardStats(properties []domain.Property, transactions []domain.Transaction, today time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalProperties:    len(properties),
		TotalMonthlyIncome: decimal.Zero,
		TotalPropertyValue: decimal.Zero,
		ExpiringContracts:  []domain.Property{},
	}

	for _, p := range properties {
		switch p.Status {
		case domain.StatusOccupied:
			stats.OccupiedProperties++
			stats.TotalMonthlyIncome = stats.TotalMonthlyIncome.Add(p.RentValue)
		case domain.StatusVacant:
			stats.VacantProperties++
		}
		stats.TotalPropertyValue = stats.TotalPropertyValue.Add(p.PropertyValue)

		if p.Status != domain.StatusOccupied || p.EndDate == "" {
			continue
		}
		days := DaysUntilExpiration(p.EndDate, today)
		if days >= 0 && days <= expiringWindowDays {
			stats.ExpiringContracts = append(stats.ExpiringContracts, p)
		}
	}

	sort.SliceStable(stats.ExpiringContracts, func(i, j int) bool {
		return DaysUntilExpiration(stats.ExpiringContracts[i].EndDate, today) <
			DaysUntilExpiration(stats.ExpiringContracts[j].EndDate, today)
	})

	return stats
}
