package dto

import "time"

// UpdateProductionConfigRequest body para PUT /api/production-config (campos opcionales).
type UpdateProductionConfigRequest struct {
	DailyProductionCapacity *int `json:"daily_production_capacity,omitempty"`
	WorkingDaysPerWeek      *int `json:"working_days_per_week,omitempty"`
	MaxInventoryDays        *int `json:"max_inventory_days,omitempty"`
	SafetyStockDays         *int `json:"safety_stock_days,omitempty"`
}

// ProductionConfigResponse representación HTTP de la configuración de producción.
type ProductionConfigResponse struct {
	ID                      string    `json:"id"`
	DailyProductionCapacity int       `json:"daily_production_capacity"`
	WorkingDaysPerWeek      int       `json:"working_days_per_week"`
	MaxInventoryDays        int       `json:"max_inventory_days"`
	SafetyStockDays         int       `json:"safety_stock_days"`
	UpdatedAt               time.Time `json:"updated_at"`
}
