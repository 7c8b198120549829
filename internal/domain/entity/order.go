package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order representa un pedido de cliente con una o más líneas de tipos de bocina.
type Order struct {
	ID           string
	OrderNumber  string // único, ej. ORD-20260830143000
	CustomerName string
	OrderDate    time.Time
	Deadline     time.Time
	Status       string // pending, in_progress, completed, cancelled
	Notes        string
	LineItems    []OrderLineItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalQuantity devuelve el total de bocinas del pedido (suma de líneas).
// Solo para presentación: la planificación opera línea por línea.
func (o *Order) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.LineItems {
		total = total.Add(item.Quantity)
	}
	return total
}

// OrderLineItem línea de pedido: tipo de bocina + cantidad (> 0).
type OrderLineItem struct {
	ID         string
	OrderID    string
	HornTypeID string
	Quantity   decimal.Decimal
}
