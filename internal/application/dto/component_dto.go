package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateComponentRequest body para POST /api/components.
type CreateComponentRequest struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	Unit                 string          `json:"unit,omitempty"` // default "pieces"
	CurrentInventory     decimal.Decimal `json:"current_inventory"`
	MinStockLevel        decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel        decimal.Decimal `json:"max_stock_level"`
	LeadTimeDays         *int            `json:"lead_time_days,omitempty"` // default 7
	SupplierName         string          `json:"supplier_name,omitempty"`
	SupplierContact      string          `json:"supplier_contact,omitempty"`
	UnitCost             decimal.Decimal `json:"unit_cost"`
	MinimumOrderQuantity decimal.Decimal `json:"minimum_order_quantity"`
}

// UpdateComponentRequest body para PUT /api/components/{id} (campos opcionales).
type UpdateComponentRequest struct {
	Name                 *string          `json:"name,omitempty"`
	Description          *string          `json:"description,omitempty"`
	Unit                 *string          `json:"unit,omitempty"`
	CurrentInventory     *decimal.Decimal `json:"current_inventory,omitempty"`
	MinStockLevel        *decimal.Decimal `json:"min_stock_level,omitempty"`
	MaxStockLevel        *decimal.Decimal `json:"max_stock_level,omitempty"`
	LeadTimeDays         *int             `json:"lead_time_days,omitempty"`
	SupplierName         *string          `json:"supplier_name,omitempty"`
	SupplierContact      *string          `json:"supplier_contact,omitempty"`
	UnitCost             *decimal.Decimal `json:"unit_cost,omitempty"`
	MinimumOrderQuantity *decimal.Decimal `json:"minimum_order_quantity,omitempty"`
}

// ComponentResponse representación HTTP de un componente.
type ComponentResponse struct {
	ID                   string          `json:"id"`
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	Unit                 string          `json:"unit"`
	CurrentInventory     decimal.Decimal `json:"current_inventory"`
	MinStockLevel        decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel        decimal.Decimal `json:"max_stock_level"`
	LeadTimeDays         int             `json:"lead_time_days"`
	SupplierName         string          `json:"supplier_name,omitempty"`
	SupplierContact      string          `json:"supplier_contact,omitempty"`
	UnitCost             decimal.Decimal `json:"unit_cost"`
	MinimumOrderQuantity decimal.Decimal `json:"minimum_order_quantity"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ComponentListResponse listado paginado de componentes.
type ComponentListResponse struct {
	Items []ComponentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
