package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una línea de plan MRP.
// El planificador asigna sufficient/scheduled/urgent; ordered y received
// son transiciones posteriores del ciclo de compra.
const (
	PlanStatusSufficient = "sufficient" // inventario cubre la demanda, no se pide nada
	PlanStatusScheduled  = "scheduled"  // pedido programado a futuro
	PlanStatusUrgent     = "urgent"     // la fecha calculada quedó en el pasado: pedir hoy
	PlanStatusOrdered    = "ordered"
	PlanStatusReceived   = "received"
)

// MRPPlanEntry resultado de planificación de materiales para un componente de un pedido.
// Se regenera completo por pedido en cada corrida (reemplazo, nunca append).
type MRPPlanEntry struct {
	ID               string
	OrderID          string
	ComponentID      string
	TotalRequired    decimal.Decimal // demanda bruta agregada entre líneas del pedido
	CurrentInventory decimal.Decimal // snapshot del inventario al momento de planificar
	NetRequirement   decimal.Decimal // max(0, demanda - inventario)
	OrderQuantity    decimal.Decimal // cantidad a pedir (incluye buffer y piso MOQ)
	OrderDate        *time.Time      // nil cuando el inventario es suficiente
	ExpectedDelivery *time.Time      // OrderDate + lead time
	EstimatedCost    decimal.Decimal
	Status           string
	CreatedAt        time.Time
}
