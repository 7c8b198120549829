package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component representa una pieza genérica usada en el ensamble de bocinas.
// CurrentInventory se modifica solo vía transacciones de inventario o recepción de pedidos MRP.
type Component struct {
	ID                   string
	Code                 string // código único
	Name                 string
	Description          string
	Unit                 string // pieces, kg, meters, etc.
	CurrentInventory     decimal.Decimal
	MinStockLevel        decimal.Decimal
	MaxStockLevel        decimal.Decimal // capacidad máxima de bodega (consultivo, no lo impone el planificador)
	LeadTimeDays         int             // días entre pedir al proveedor y recibir
	SupplierName         string
	SupplierContact      string
	UnitCost             decimal.Decimal
	MinimumOrderQuantity decimal.Decimal // MOQ del proveedor
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
