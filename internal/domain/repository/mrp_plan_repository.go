package repository

import (
	"time"

	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PlanRow línea de plan enriquecida con los datos del componente para
// presentación y export. La produce la DB con un join; el use case la
// convierte en DTO o en fila de CSV/PDF.
type PlanRow struct {
	ID               string
	OrderID          string
	ComponentID      string
	ComponentCode    string
	ComponentName    string
	Unit             string
	TotalRequired    decimal.Decimal
	CurrentInventory decimal.Decimal
	NetRequirement   decimal.Decimal
	OrderQuantity    decimal.Decimal
	OrderDate        *time.Time
	ExpectedDelivery *time.Time
	SupplierName     string
	LeadTimeDays     int
	EstimatedCost    decimal.Decimal
	Status           string
}

// MRPPlanRepository puerto de persistencia para las líneas de plan MRP.
// La regeneración reemplaza todas las líneas del pedido (DeleteByOrder +
// CreateBatch dentro de una misma tx vía TxRunner).
type MRPPlanRepository interface {
	DeleteByOrder(orderID string) error
	CreateBatch(entries []*entity.MRPPlanEntry) error
	GetByID(id string) (*entity.MRPPlanEntry, error)
	// ListByOrder devuelve las líneas del pedido ordenadas por order_date
	// ascendente (las líneas sin fecha al final).
	ListByOrder(orderID string) ([]*PlanRow, error)
	UpdateStatus(id, status string) error
}
