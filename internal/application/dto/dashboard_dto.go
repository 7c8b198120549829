package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO métricas del dashboard principal.
type DashboardSummaryDTO struct {
	TotalComponents     int             `json:"total_components"`
	TotalHornTypes      int             `json:"total_horn_types"`
	TotalOrders         int             `json:"total_orders"`
	ActiveOrders        int             `json:"active_orders"`
	LowStockComponents  int             `json:"low_stock_components"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}
