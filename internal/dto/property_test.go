package dto

import (
	"testing"
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUpdatePropertyRequestApplyTo(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	base := domain.Property{
		PropertyID:    "p1",
		Name:          "AQUARIUS",
		Unit:          "1305",
		Area:          50.05,
		PropertyValue: decimal.NewFromInt(500000),
		RentValue:     decimal.NewFromInt(1700),
		Tenant:        "JULIETE",
		EndDate:       "2027-12-15",
		DueDay:        21,
		Status:        domain.StatusOccupied,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	t.Run("empty request changes nothing", func(t *testing.T) {
		p := base
		UpdatePropertyRequest{}.ApplyTo(&p)
		assert.Equal(t, base, p)
	})

	t.Run("only set fields are applied", func(t *testing.T) {
		p := base
		tenant := ""
		status := "vacant"
		endDate := ""
		UpdatePropertyRequest{
			Tenant:  &tenant,
			Status:  &status,
			EndDate: &endDate,
		}.ApplyTo(&p)

		assert.Equal(t, "", p.Tenant, "explicit empty string clears the field")
		assert.Equal(t, domain.StatusVacant, p.Status)
		assert.Equal(t, "", p.EndDate)
		// Untouched fields keep their values.
		assert.Equal(t, "AQUARIUS", p.Name)
		assert.True(t, p.RentValue.Equal(decimal.NewFromInt(1700)))
		assert.Equal(t, 21, p.DueDay)
	})

	t.Run("identity fields never change", func(t *testing.T) {
		p := base
		name := "LUDCO"
		rent := decimal.NewFromInt(2000)
		UpdatePropertyRequest{
			Name:      &name,
			RentValue: &rent,
		}.ApplyTo(&p)

		assert.Equal(t, "p1", p.PropertyID)
		assert.Equal(t, createdAt, p.CreatedAt)
	})
}
