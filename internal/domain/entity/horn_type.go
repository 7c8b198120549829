package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HornType representa un modelo de bocina que la planta produce
// (ej. bocina estándar, bocina premium). Su BOM vive en BOMEntry.
type HornType struct {
	ID          string
	Code        string // código único
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BOMEntry vincula un componente a un tipo de bocina con la cantidad
// consumida por unidad producida. QuantityPerHorn siempre > 0 (validado al crear).
type BOMEntry struct {
	ID              string
	HornTypeID      string
	ComponentID     string
	QuantityPerHorn decimal.Decimal
	CreatedAt       time.Time
}
