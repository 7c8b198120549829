package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetEntityCounts devuelve los totales de componentes, tipos de bocina y pedidos.
func (r *AnalyticsRepo) GetEntityCounts(ctx context.Context) (repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM components),
			(SELECT COUNT(*) FROM horn_types),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status IN ('pending', 'in_progress'))`
	var counts repository.EntityCounts
	err := r.q.QueryRow(ctx, query).Scan(
		&counts.TotalComponents, &counts.TotalHornTypes,
		&counts.TotalOrders, &counts.ActiveOrders,
	)
	if err != nil {
		return repository.EntityCounts{}, fmt.Errorf("entity counts: %w", err)
	}
	return counts, nil
}

// CountLowStock cuenta los componentes con inventario por debajo de su mínimo.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM components WHERE current_inventory < min_stock_level`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// GetInventoryValue devuelve Σ(current_inventory × unit_cost) de todos los componentes.
func (r *AnalyticsRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_inventory * unit_cost), 0) FROM components`,
	).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return value, nil
}
