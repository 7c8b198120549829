package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateHornTypeRequest body para POST /api/horn-types.
type CreateHornTypeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateHornTypeRequest body para PUT /api/horn-types/{id}.
type UpdateHornTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddBOMEntryRequest body para POST /api/horn-types/{id}/components.
type AddBOMEntryRequest struct {
	ComponentID     string          `json:"component_id"`
	QuantityPerHorn decimal.Decimal `json:"quantity_per_horn"` // debe ser > 0
}

// UpdateBOMEntryRequest body para PUT /api/horn-types/{id}/components/{componentID}.
type UpdateBOMEntryRequest struct {
	QuantityPerHorn decimal.Decimal `json:"quantity_per_horn"` // debe ser > 0
}

// BOMEntryResponse entrada de BOM con datos del componente para la UI.
type BOMEntryResponse struct {
	ID              string          `json:"id"`
	HornTypeID      string          `json:"horn_type_id"`
	ComponentID     string          `json:"component_id"`
	ComponentCode   string          `json:"component_code,omitempty"`
	ComponentName   string          `json:"component_name,omitempty"`
	ComponentUnit   string          `json:"component_unit,omitempty"`
	QuantityPerHorn decimal.Decimal `json:"quantity_per_horn"`
}

// HornTypeResponse representación HTTP de un tipo de bocina.
type HornTypeResponse struct {
	ID          string             `json:"id"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	BOM         []BOMEntryResponse `json:"bom_components,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// HornTypeListResponse listado paginado de tipos de bocina.
type HornTypeListResponse struct {
	Items []HornTypeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
