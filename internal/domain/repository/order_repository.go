package repository

import "github.com/jhoicas/spra-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order con sus líneas.
type OrderRepository interface {
	// Create persiste el pedido y sus líneas. Llamar dentro de una tx (vía TxRunner).
	Create(order *entity.Order) error
	// GetByID devuelve el pedido con las líneas resueltas, o nil si no existe.
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	// ReplaceLineItems borra y reinserta las líneas del pedido.
	ReplaceLineItems(orderID string, items []entity.OrderLineItem) error
	List(limit, offset int) ([]*entity.Order, error)
	Delete(id string) error
}
