package leases_test

import (
	"testing"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/imoveis-app/imoveis_backend/internal/utils/leases"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func dateIn(days int) string {
	return today.AddDate(0, 0, days).Format("2006-01-02")
}

func TestDaysUntilExpiration(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		want    int
	}{
		{name: "empty end date never expires", endDate: "", want: leases.NeverExpires},
		{name: "malformed end date fails open", endDate: "15/06/2025", want: leases.NeverExpires},
		{name: "garbage end date fails open", endDate: "not-a-date", want: leases.NeverExpires},
		{name: "same day", endDate: dateIn(0), want: 0},
		{name: "fifteen days out", endDate: dateIn(15), want: 15},
		{name: "already expired", endDate: dateIn(-5), want: -5},
		{name: "far future", endDate: dateIn(365), want: 365},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leases.DaysUntilExpiration(tt.endDate, today))
		})
	}
}

func TestDaysUntilExpiration_IgnoresTimeOfDay(t *testing.T) {
	// The diff is in calendar days, so any time of day on "today" gives the
	// same answer.
	morning := time.Date(2025, time.June, 15, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 10, leases.DaysUntilExpiration("2025-06-25", morning))
	assert.Equal(t, 10, leases.DaysUntilExpiration("2025-06-25", night))
}

func TestExpirationStatus(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		want    leases.Status
	}{
		{name: "expired yesterday", endDate: dateIn(-1), want: leases.Expired},
		{name: "expires today is critical", endDate: dateIn(0), want: leases.Critical},
		{name: "fifteen days is critical", endDate: dateIn(15), want: leases.Critical},
		{name: "thirty days is critical", endDate: dateIn(30), want: leases.Critical},
		{name: "thirty-one days is warning", endDate: dateIn(31), want: leases.Warning},
		{name: "ninety days is warning", endDate: dateIn(90), want: leases.Warning},
		{name: "ninety-one days is ok", endDate: dateIn(91), want: leases.OK},
		{name: "no end date is ok", endDate: "", want: leases.OK},
		{name: "malformed end date is ok", endDate: "junk", want: leases.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leases.ExpirationStatus(tt.endDate, today))
		})
	}
}

func prop(id string, status domain.PropertyStatus, rent, value int64, endDate string) domain.Property {
	return domain.Property{
		PropertyID:    id,
		Name:          "UNIT " + id,
		Status:        status,
		RentValue:     decimal.NewFromInt(rent),
		PropertyValue: decimal.NewFromInt(value),
		EndDate:       endDate,
	}
}

func TestComputeDashboardStats_Counts(t *testing.T) {
	properties := []domain.Property{
		prop("a", domain.StatusOccupied, 1000, 100000, ""),
		prop("b", domain.StatusVacant, 2000, 200000, ""),
		prop("c", domain.StatusMaintenance, 3000, 300000, ""),
	}

	stats := leases.ComputeDashboardStats(properties, nil, today)

	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, 1, stats.OccupiedProperties)
	assert.Equal(t, 1, stats.VacantProperties)
	// Maintenance rent stays out of income, but its value still counts.
	assert.True(t, stats.TotalMonthlyIncome.Equal(decimal.NewFromInt(1000)),
		"income should be %s, got %s", "1000", stats.TotalMonthlyIncome)
	assert.True(t, stats.TotalPropertyValue.Equal(decimal.NewFromInt(600000)),
		"value should be %s, got %s", "600000", stats.TotalPropertyValue)
}

func TestComputeDashboardStats_IncomeExcludesNonOccupied(t *testing.T) {
	properties := []domain.Property{
		prop("a", domain.StatusOccupied, 1000, 0, ""),
		prop("b", domain.StatusVacant, 2000, 0, ""),
	}

	stats := leases.ComputeDashboardStats(properties, nil, today)

	assert.True(t, stats.TotalMonthlyIncome.Equal(decimal.NewFromInt(1000)))
}

func TestComputeDashboardStats_ExpiringContracts(t *testing.T) {
	properties := []domain.Property{
		prop("far", domain.StatusOccupied, 0, 0, dateIn(91)),      // outside window
		prop("late", domain.StatusOccupied, 0, 0, dateIn(60)),     // warning
		prop("gone", domain.StatusOccupied, 0, 0, dateIn(-5)),     // expired, dropped
		prop("soon", domain.StatusOccupied, 0, 0, dateIn(15)),     // critical
		prop("vacant", domain.StatusVacant, 0, 0, dateIn(10)),     // wrong status
		prop("maint", domain.StatusMaintenance, 0, 0, dateIn(10)), // wrong status
		prop("open", domain.StatusOccupied, 0, 0, ""),             // no end date
		prop("edge", domain.StatusOccupied, 0, 0, dateIn(90)),     // boundary, included
		prop("now", domain.StatusOccupied, 0, 0, dateIn(0)),       // boundary, included
	}

	stats := leases.ComputeDashboardStats(properties, nil, today)

	ids := make([]string, len(stats.ExpiringContracts))
	for i, p := range stats.ExpiringContracts {
		ids[i] = p.PropertyID
	}
	assert.Equal(t, []string{"now", "soon", "late", "edge"}, ids)

	// Sorted ascending by days-until-expiration.
	for i := 1; i < len(stats.ExpiringContracts); i++ {
		prev := leases.DaysUntilExpiration(stats.ExpiringContracts[i-1].EndDate, today)
		cur := leases.DaysUntilExpiration(stats.ExpiringContracts[i].EndDate, today)
		assert.LessOrEqual(t, prev, cur)
	}
}

func TestComputeDashboardStats_ExpiredLeaseDropsOut(t *testing.T) {
	// A lease five days past its end is alarming but no longer "expiring soon".
	p := prop("gone", domain.StatusOccupied, 0, 0, dateIn(-5))

	assert.Equal(t, -5, leases.DaysUntilExpiration(p.EndDate, today))
	assert.Equal(t, leases.Expired, leases.ExpirationStatus(p.EndDate, today))

	stats := leases.ComputeDashboardStats([]domain.Property{p}, nil, today)
	assert.Empty(t, stats.ExpiringContracts)
}

func TestComputeDashboardStats_CriticalLeaseIncluded(t *testing.T) {
	p := prop("soon", domain.StatusOccupied, 0, 0, dateIn(15))

	assert.Equal(t, leases.Critical, leases.ExpirationStatus(p.EndDate, today))

	stats := leases.ComputeDashboardStats([]domain.Property{p}, nil, today)
	require.Len(t, stats.ExpiringContracts, 1)
	assert.Equal(t, "soon", stats.ExpiringContracts[0].PropertyID)
}

func TestComputeDashboardStats_StableTieBreak(t *testing.T) {
	sameDay := dateIn(20)
	properties := []domain.Property{
		prop("first", domain.StatusOccupied, 0, 0, sameDay),
		prop("second", domain.StatusOccupied, 0, 0, sameDay),
		prop("third", domain.StatusOccupied, 0, 0, sameDay),
	}

	stats := leases.ComputeDashboardStats(properties, nil, today)

	require.Len(t, stats.ExpiringContracts, 3)
	assert.Equal(t, "first", stats.ExpiringContracts[0].PropertyID)
	assert.Equal(t, "second", stats.ExpiringContracts[1].PropertyID)
	assert.Equal(t, "third", stats.ExpiringContracts[2].PropertyID)
}

func TestComputeDashboardStats_Idempotent(t *testing.T) {
	properties := []domain.Property{
		prop("a", domain.StatusOccupied, 1500, 400000, dateIn(45)),
		prop("b", domain.StatusVacant, 0, 250000, ""),
	}
	transactions := []domain.Transaction{
		{TransactionID: "t1", PropertyID: "a", Type: domain.Income, Amount: decimal.NewFromInt(1500)},
	}

	first := leases.ComputeDashboardStats(properties, transactions, today)
	second := leases.ComputeDashboardStats(properties, transactions, today)

	assert.Equal(t, first, second)
}

func TestComputeDashboardStats_EmptySnapshot(t *testing.T) {
	stats := leases.ComputeDashboardStats(nil, nil, today)

	assert.Equal(t, 0, stats.TotalProperties)
	assert.NotNil(t, stats.ExpiringContracts)
	assert.Empty(t, stats.ExpiringContracts)
	assert.True(t, stats.TotalMonthlyIncome.IsZero())
	assert.True(t, stats.TotalPropertyValue.IsZero())
}
