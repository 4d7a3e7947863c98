package dto

import (
	"time"

	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to create a new property.
// Lease dates are "YYYY-MM-DD"; empty string means absent. Money fields
// default to zero when omitted.
type CreatePropertyRequest struct {
	Name          string          `json:"name" binding:"required"`
	Unit          string          `json:"unit"`
	Area          float64         `json:"area" binding:"gte=0"`
	PropertyValue decimal.Decimal `json:"propertyValue"`
	RentValue     decimal.Decimal `json:"rentValue"`
	CondoFee      decimal.Decimal `json:"condoFee"`
	IPTU          decimal.Decimal `json:"iptu"`
	ExtraFee      decimal.Decimal `json:"extraFee"`
	Tenant        string          `json:"tenant"`
	StartDate     string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	DueDay        int             `json:"dueDay" binding:"required,min=1,max=31"`
	NetValue      decimal.Decimal `json:"netValue"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status" binding:"required,oneof=occupied vacant maintenance"`
}

// UpdatePropertyRequest defines a partial update: only non-nil fields are
// applied (merge semantics). The property ID and CreatedAt never change.
type UpdatePropertyRequest struct {
	Name          *string          `json:"name,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	Area          *float64         `json:"area,omitempty" binding:"omitempty,gte=0"`
	PropertyValue *decimal.Decimal `json:"propertyValue,omitempty"`
	RentValue     *decimal.Decimal `json:"rentValue,omitempty"`
	CondoFee      *decimal.Decimal `json:"condoFee,omitempty"`
	IPTU          *decimal.Decimal `json:"iptu,omitempty"`
	ExtraFee      *decimal.Decimal `json:"extraFee,omitempty"`
	Tenant        *string          `json:"tenant,omitempty"`
	StartDate     *string          `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string          `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DueDay        *int             `json:"dueDay,omitempty" binding:"omitempty,min=1,max=31"`
	NetValue      *decimal.Decimal `json:"netValue,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Status        *string          `json:"status,omitempty" binding:"omitempty,oneof=occupied vacant maintenance"`
}

// ApplyTo merges the set fields of the request onto an existing property.
func (r UpdatePropertyRequest) ApplyTo(p *domain.Property) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	if r.Area != nil {
		p.Area = *r.Area
	}
	if r.PropertyValue != nil {
		p.PropertyValue = *r.PropertyValue
	}
	if r.RentValue != nil {
		p.RentValue = *r.RentValue
	}
	if r.CondoFee != nil {
		p.CondoFee = *r.CondoFee
	}
	if r.IPTU != nil {
		p.IPTU = *r.IPTU
	}
	if r.ExtraFee != nil {
		p.ExtraFee = *r.ExtraFee
	}
	if r.Tenant != nil {
		p.Tenant = *r.Tenant
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = *r.EndDate
	}
	if r.DueDay != nil {
		p.DueDay = *r.DueDay
	}
	if r.NetValue != nil {
		p.NetValue = *r.NetValue
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
	if r.Status != nil {
		p.Status = domain.PropertyStatus(*r.Status)
	}
}

// PropertyResponse defines the data returned for a property.
type PropertyResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Area          float64         `json:"area"`
	PropertyValue decimal.Decimal `json:"propertyValue"`
	RentValue     decimal.Decimal `json:"rentValue"`
	CondoFee      decimal.Decimal `json:"condoFee"`
	IPTU          decimal.Decimal `json:"iptu"`
	ExtraFee      decimal.Decimal `json:"extraFee"`
	Tenant        string          `json:"tenant"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	DueDay        int             `json:"dueDay"`
	NetValue      decimal.Decimal `json:"netValue"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToPropertyResponse converts a domain Property to a PropertyResponse DTO.
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.PropertyID,
		Name:          p.Name,
		Unit:          p.Unit,
		Area:          p.Area,
		PropertyValue: p.PropertyValue,
		RentValue:     p.RentValue,
		CondoFee:      p.CondoFee,
		IPTU:          p.IPTU,
		ExtraFee:      p.ExtraFee,
		Tenant:        p.Tenant,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		DueDay:        p.DueDay,
		NetValue:      p.NetValue,
		Notes:         p.Notes,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToListPropertyResponse converts a slice of domain Properties to response DTOs.
func ToListPropertyResponse(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i := range properties {
		res[i] = ToPropertyResponse(&properties[i])
	}
	return res
}
