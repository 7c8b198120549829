package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MRPSummaryDTO resumen de una corrida MRP.
type MRPSummaryDTO struct {
	OrderQuantity      decimal.Decimal `json:"order_quantity"`
	WorkingDays        int             `json:"working_days"`
	DailyProduction    decimal.Decimal `json:"daily_production"`
	ProductionStart    time.Time       `json:"production_start"`
	TotalComponents    int             `json:"total_components"`
	ComponentsToOrder  int             `json:"components_to_order"`
	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
	CapacityExceeded   bool            `json:"capacity_exceeded"`
	CapacityShortfall  decimal.Decimal `json:"capacity_shortfall"`
}

// MRPPlanEntryDTO línea de plan para presentación (con datos del componente).
type MRPPlanEntryDTO struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"order_id"`
	ComponentID      string          `json:"component_id"`
	ComponentCode    string          `json:"component_code,omitempty"`
	ComponentName    string          `json:"component_name,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	TotalRequired    decimal.Decimal `json:"total_required"`
	CurrentInventory decimal.Decimal `json:"current_inventory"`
	NetRequirement   decimal.Decimal `json:"net_requirement"`
	OrderQuantity    decimal.Decimal `json:"order_quantity"`
	OrderDate        *time.Time      `json:"order_date"`
	ExpectedDelivery *time.Time      `json:"expected_delivery"`
	SupplierName     string          `json:"supplier_name,omitempty"`
	LeadTimeDays     int             `json:"lead_time_days"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
	Status           string          `json:"status"`
}

// GenerateMRPResponse respuesta de POST /api/mrp/generate/{orderID}.
type GenerateMRPResponse struct {
	Message string            `json:"message"`
	Summary MRPSummaryDTO     `json:"summary"`
	Plans   []MRPPlanEntryDTO `json:"plans"`
}

// MRPPlanListResponse respuesta de GET /api/mrp/order/{orderID}.
type MRPPlanListResponse struct {
	OrderID string            `json:"order_id"`
	Plans   []MRPPlanEntryDTO `json:"plans"`
}

// UpdatePlanStatusRequest body para PUT /api/mrp/{planID}/status.
type UpdatePlanStatusRequest struct {
	Status string `json:"status"` // ordered | received
}
