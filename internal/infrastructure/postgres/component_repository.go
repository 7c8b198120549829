package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

const componentColumns = `id, code, name, description, unit, current_inventory, min_stock_level,
	max_stock_level, lead_time_days, supplier_name, supplier_contact, unit_cost,
	minimum_order_quantity, created_at, updated_at`

// ComponentRepo implementación del puerto ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

// Create persiste un componente nuevo.
func (r *ComponentRepo) Create(component *entity.Component) error {
	query := `
		INSERT INTO components (` + componentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.Code, component.Name, component.Description, component.Unit,
		component.CurrentInventory, component.MinStockLevel, component.MaxStockLevel,
		component.LeadTimeDays, component.SupplierName, component.SupplierContact,
		component.UnitCost, component.MinimumOrderQuantity, component.CreatedAt, component.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert component: %w", err)
	}
	return nil
}

// GetByID obtiene un componente por ID, o nil si no existe.
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get component")
}

// GetByCode obtiene un componente por código único, o nil si no existe.
func (r *ComponentRepo) GetByCode(code string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get component by code")
}

// GetByIDs obtiene varios componentes en una sola consulta.
func (r *ComponentRepo) GetByIDs(ids []string) ([]*entity.Component, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get components by ids: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// Update actualiza todos los campos editables del componente.
func (r *ComponentRepo) Update(component *entity.Component) error {
	query := `
		UPDATE components SET name = $2, description = $3, unit = $4, current_inventory = $5,
			min_stock_level = $6, max_stock_level = $7, lead_time_days = $8, supplier_name = $9,
			supplier_contact = $10, unit_cost = $11, minimum_order_quantity = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.Name, component.Description, component.Unit,
		component.CurrentInventory, component.MinStockLevel, component.MaxStockLevel,
		component.LeadTimeDays, component.SupplierName, component.SupplierContact,
		component.UnitCost, component.MinimumOrderQuantity, component.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update component: %w", err)
	}
	return nil
}

// UpdateInventory fija el inventario actual (ajustes y recepción MRP).
func (r *ComponentRepo) UpdateInventory(componentID string, newBalance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE components SET current_inventory = $2, updated_at = now() WHERE id = $1`,
		componentID, newBalance,
	)
	if err != nil {
		return fmt.Errorf("update component inventory: %w", err)
	}
	return nil
}

// List lista componentes con paginación, ordenados por código.
func (r *ComponentRepo) List(limit, offset int) ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// Delete elimina un componente. ErrConflict si un BOM o un plan lo referencia.
func (r *ComponentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM components WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete component: %w", err)
	}
	return nil
}

func (r *ComponentRepo) scanOne(row pgx.Row, op string) (*entity.Component, error) {
	var c entity.Component
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Description, &c.Unit, &c.CurrentInventory,
		&c.MinStockLevel, &c.MaxStockLevel, &c.LeadTimeDays, &c.SupplierName,
		&c.SupplierContact, &c.UnitCost, &c.MinimumOrderQuantity, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *ComponentRepo) scanList(rows pgx.Rows) ([]*entity.Component, error) {
	var list []*entity.Component
	for rows.Next() {
		var c entity.Component
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Description, &c.Unit, &c.CurrentInventory,
			&c.MinStockLevel, &c.MaxStockLevel, &c.LeadTimeDays, &c.SupplierName,
			&c.SupplierContact, &c.UnitCost, &c.MinimumOrderQuantity, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
