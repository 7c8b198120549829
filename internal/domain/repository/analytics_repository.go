package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// EntityCounts conteos crudos para el dashboard. Los produce la DB;
// el use case los convierte en DTO.
type EntityCounts struct {
	TotalComponents int
	TotalHornTypes  int
	TotalOrders     int
	ActiveOrders    int // pending + in_progress
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetEntityCounts devuelve los totales de componentes, tipos y pedidos.
	GetEntityCounts(ctx context.Context) (EntityCounts, error)

	// CountLowStock cuenta los componentes con inventario por debajo de su mínimo.
	CountLowStock(ctx context.Context) (int, error)

	// GetInventoryValue devuelve Σ(current_inventory × unit_cost) de todos los componentes.
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)
}
