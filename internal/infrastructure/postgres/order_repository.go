package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido y sus líneas. Llamar dentro de una tx.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, customer_name, order_date, deadline, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.CustomerName, order.OrderDate, order.Deadline,
		order.Status, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertLineItems(order.ID, order.LineItems)
}

// GetByID devuelve el pedido con sus líneas resueltas, o nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT id, order_number, customer_name, order_date, deadline, status, notes, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.OrderDate, &o.Deadline,
		&o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.listLineItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.LineItems = items
	return &o, nil
}

// Update actualiza los campos del pedido (no toca las líneas).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET order_number = $2, customer_name = $3, deadline = $4, status = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.CustomerName, order.Deadline,
		order.Status, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ReplaceLineItems borra y reinserta las líneas del pedido. Llamar dentro de una tx.
func (r *OrderRepo) ReplaceLineItems(orderID string, items []entity.OrderLineItem) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_line_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order line items: %w", err)
	}
	return r.insertLineItems(orderID, items)
}

// List lista pedidos con sus líneas, los más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT id, order_number, customer_name, order_date, deadline, status, notes, created_at, updated_at
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.OrderDate, &o.Deadline,
			&o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.listLineItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.LineItems = items
	}
	return list, nil
}

// Delete elimina un pedido; líneas y planes MRP caen en cascada.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) insertLineItems(orderID string, items []entity.OrderLineItem) error {
	for _, item := range items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_line_items (id, order_id, horn_type_id, quantity) VALUES ($1, $2, $3, $4)`,
			item.ID, orderID, item.HornTypeID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order line item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) listLineItems(orderID string) ([]entity.OrderLineItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, order_id, horn_type_id, quantity FROM order_line_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order line items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderLineItem
	for rows.Next() {
		var item entity.OrderLineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.HornTypeID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
