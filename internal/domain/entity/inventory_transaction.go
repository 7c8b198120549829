package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TxTypeReceipt     = "receipt"
	TxTypeConsumption = "consumption"
	TxTypeAdjustment  = "adjustment"
)

// InventoryTransaction movimiento de inventario de un componente.
// Quantity positiva para recepción, negativa para consumo.
type InventoryTransaction struct {
	ID              string
	ComponentID     string
	Type            string
	Quantity        decimal.Decimal
	BalanceAfter    decimal.Decimal
	Reference       string // número de pedido, PO, MRP-<id>, etc.
	Notes           string
	TransactionDate time.Time
}
