package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

var _ repository.MRPPlanRepository = (*MRPPlanRepo)(nil)

// MRPPlanRepo implementación del puerto MRPPlanRepository sobre PostgreSQL.
type MRPPlanRepo struct {
	q Querier
}

// NewMRPPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMRPPlanRepository(q Querier) *MRPPlanRepo {
	return &MRPPlanRepo{q: q}
}

// DeleteByOrder borra todas las líneas de plan de un pedido (paso previo a regenerar).
func (r *MRPPlanRepo) DeleteByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM mrp_plans WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete mrp plans: %w", err)
	}
	return nil
}

// CreateBatch inserta las líneas de una corrida. Llamar dentro de una tx
// junto con DeleteByOrder.
func (r *MRPPlanRepo) CreateBatch(entries []*entity.MRPPlanEntry) error {
	query := `
		INSERT INTO mrp_plans (id, order_id, component_id, total_required, current_inventory,
			net_requirement, order_quantity, order_date, expected_delivery, estimated_cost, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, e := range entries {
		_, err := r.q.Exec(context.Background(), query,
			e.ID, e.OrderID, e.ComponentID, e.TotalRequired, e.CurrentInventory,
			e.NetRequirement, e.OrderQuantity, e.OrderDate, e.ExpectedDelivery,
			e.EstimatedCost, e.Status, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert mrp plan: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una línea de plan por ID, o nil si no existe.
func (r *MRPPlanRepo) GetByID(id string) (*entity.MRPPlanEntry, error) {
	query := `SELECT id, order_id, component_id, total_required, current_inventory,
			net_requirement, order_quantity, order_date, expected_delivery, estimated_cost, status, created_at
		FROM mrp_plans WHERE id = $1`
	var e entity.MRPPlanEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.OrderID, &e.ComponentID, &e.TotalRequired, &e.CurrentInventory,
		&e.NetRequirement, &e.OrderQuantity, &e.OrderDate, &e.ExpectedDelivery,
		&e.EstimatedCost, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mrp plan: %w", err)
	}
	return &e, nil
}

// ListByOrder devuelve las líneas del pedido enriquecidas con los datos del
// componente, ordenadas por order_date ascendente (sin fecha al final).
func (r *MRPPlanRepo) ListByOrder(orderID string) ([]*repository.PlanRow, error) {
	query := `
		SELECT p.id, p.order_id, p.component_id, c.code, c.name, c.unit,
			p.total_required, p.current_inventory, p.net_requirement, p.order_quantity,
			p.order_date, p.expected_delivery, c.supplier_name, c.lead_time_days,
			p.estimated_cost, p.status
		FROM mrp_plans p
		JOIN components c ON c.id = p.component_id
		WHERE p.order_id = $1
		ORDER BY p.order_date ASC NULLS LAST, c.code`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list mrp plans: %w", err)
	}
	defer rows.Close()
	var list []*repository.PlanRow
	for rows.Next() {
		var row repository.PlanRow
		if err := rows.Scan(
			&row.ID, &row.OrderID, &row.ComponentID, &row.ComponentCode, &row.ComponentName,
			&row.Unit, &row.TotalRequired, &row.CurrentInventory, &row.NetRequirement,
			&row.OrderQuantity, &row.OrderDate, &row.ExpectedDelivery, &row.SupplierName,
			&row.LeadTimeDays, &row.EstimatedCost, &row.Status,
		); err != nil {
			return nil, fmt.Errorf("scan mrp plan row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una línea de plan.
func (r *MRPPlanRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE mrp_plans SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update mrp plan status: %w", err)
	}
	return nil
}
