package repository

import (
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ComponentRepository define el puerto de persistencia para Component (DIP).
type ComponentRepository interface {
	Create(component *entity.Component) error
	GetByID(id string) (*entity.Component, error)
	GetByCode(code string) (*entity.Component, error)
	GetByIDs(ids []string) ([]*entity.Component, error)
	Update(component *entity.Component) error
	// UpdateInventory fija el inventario actual (usado por transacciones y recepción MRP).
	UpdateInventory(componentID string, newBalance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Component, error)
	Delete(id string) error
}
