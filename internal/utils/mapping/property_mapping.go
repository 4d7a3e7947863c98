package mapping

import (
	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/imoveis-app/imoveis_backend/internal/models"
)

// ToModelProperty converts a domain Property to a model Property.
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID:    d.PropertyID,
		Name:          d.Name,
		Unit:          d.Unit,
		Area:          d.Area,
		PropertyValue: d.PropertyValue,
		RentValue:     d.RentValue,
		CondoFee:      d.CondoFee,
		IPTU:          d.IPTU,
		ExtraFee:      d.ExtraFee,
		Tenant:        d.Tenant,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		DueDay:        d.DueDay,
		NetValue:      d.NetValue,
		Notes:         d.Notes,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainProperty converts a model Property to a domain Property.
// Unknown persisted status values are coerced to vacant so a bad row can
// still be listed and corrected instead of breaking every read.
func ToDomainProperty(m models.Property) domain.Property {
	status := domain.PropertyStatus(m.Status)
	if !status.IsValid() {
		status = domain.StatusVacant
	}
	return domain.Property{
		PropertyID:    m.PropertyID,
		Name:          m.Name,
		Unit:          m.Unit,
		Area:          m.Area,
		PropertyValue: m.PropertyValue,
		RentValue:     m.RentValue,
		CondoFee:      m.CondoFee,
		IPTU:          m.IPTU,
		ExtraFee:      m.ExtraFee,
		Tenant:        m.Tenant,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		DueDay:        m.DueDay,
		NetValue:      m.NetValue,
		Notes:         m.Notes,
		Status:        status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainPropertySlice converts a slice of model Properties to domain Properties.
func ToDomainPropertySlice(ms []models.Property) []domain.Property {
	ds := make([]domain.Property, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProperty(m)
	}
	return ds
}
