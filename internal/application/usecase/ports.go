package usecase

import (
	"context"

	"github.com/jhoicas/spra-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos, con los
// repositorios atados a la tx. Si fn devuelve error se revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		componentRepo repository.ComponentRepository,
		planRepo repository.MRPPlanRepository,
		invTxRepo repository.InventoryTransactionRepository,
	) error) error
}

// PlanPDFGenerator puerto para generar la hoja PDF de un plan MRP.
// La implementación vive en infrastructure (maroto).
type PlanPDFGenerator interface {
	GeneratePlanSheet(orderNumber, customerName string, rows []*repository.PlanRow) ([]byte, error)
}
