package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del puerto InventoryTransactionRepository sobre PostgreSQL.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create registra un movimiento de inventario.
func (r *InventoryTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, component_id, transaction_type, quantity, balance_after, reference, notes, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ComponentID, tx.Type, tx.Quantity, tx.BalanceAfter,
		tx.Reference, tx.Notes, tx.TransactionDate,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListByComponent devuelve los movimientos más recientes. componentID vacío
// lista los de todos los componentes.
func (r *InventoryTransactionRepo) ListByComponent(componentID string, limit int) ([]*entity.InventoryTransaction, error) {
	query := `SELECT id, component_id, transaction_type, quantity, balance_after, reference, notes, transaction_date
		FROM inventory_transactions
		WHERE ($1 = '' OR component_id = $1)
		ORDER BY transaction_date DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, componentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(&t.ID, &t.ComponentID, &t.Type, &t.Quantity, &t.BalanceAfter,
			&t.Reference, &t.Notes, &t.TransactionDate); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
