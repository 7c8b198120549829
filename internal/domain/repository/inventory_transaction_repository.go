package repository

import "github.com/jhoicas/spra-api/internal/domain/entity"

// InventoryTransactionRepository puerto para el historial de movimientos de inventario.
type InventoryTransactionRepository interface {
	Create(tx *entity.InventoryTransaction) error
	// ListByComponent devuelve los movimientos más recientes de un componente.
	// componentID vacío lista los movimientos de todos los componentes.
	ListByComponent(componentID string, limit int) ([]*entity.InventoryTransaction, error)
}
