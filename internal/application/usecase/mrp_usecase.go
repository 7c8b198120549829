package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/mrp"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

// MRPUseCase orquesta las corridas del planificador: arma el snapshot desde
// los repositorios, ejecuta el cálculo puro y reemplaza el plan persistido.
type MRPUseCase struct {
	orderRepo     repository.OrderRepository
	hornTypeRepo  repository.HornTypeRepository
	componentRepo repository.ComponentRepository
	planRepo      repository.MRPPlanRepository
	invTxRepo     repository.InventoryTransactionRepository
	configUC      *ProductionConfigUseCase
	txRunner      TxRunner
}

// NewMRPUseCase construye el caso de uso.
func NewMRPUseCase(
	orderRepo repository.OrderRepository,
	hornTypeRepo repository.HornTypeRepository,
	componentRepo repository.ComponentRepository,
	planRepo repository.MRPPlanRepository,
	invTxRepo repository.InventoryTransactionRepository,
	configUC *ProductionConfigUseCase,
	txRunner TxRunner,
) *MRPUseCase {
	return &MRPUseCase{
		orderRepo:     orderRepo,
		hornTypeRepo:  hornTypeRepo,
		componentRepo: componentRepo,
		planRepo:      planRepo,
		invTxRepo:     invTxRepo,
		configUC:      configUC,
		txRunner:      txRunner,
	}
}

// Generate corre el planificador para un pedido y reemplaza su plan completo.
// Regenerar con el mismo estado del mundo produce el mismo plan (idempotente).
// Devuelve mrp.ErrEmptyOrder (sin envolver) cuando el pedido no tiene demanda,
// para que el handler lo presente como advertencia y no como error del servidor.
func (uc *MRPUseCase) Generate(ctx context.Context, orderID string) (*dto.GenerateMRPResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	config, err := uc.configUC.Current()
	if err != nil {
		return nil, err
	}

	input, err := uc.buildPlanInput(order, config)
	if err != nil {
		return nil, err
	}

	result, err := mrp.GeneratePlan(*input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]*entity.MRPPlanEntry, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, &entity.MRPPlanEntry{
			ID:               uuid.New().String(),
			OrderID:          order.ID,
			ComponentID:      e.ComponentID,
			TotalRequired:    e.TotalRequired,
			CurrentInventory: e.CurrentInventory,
			NetRequirement:   e.NetRequirement,
			OrderQuantity:    e.OrderQuantity,
			OrderDate:        e.OrderDate,
			ExpectedDelivery: e.ExpectedDelivery,
			EstimatedCost:    e.EstimatedCost,
			Status:           e.Status,
			CreatedAt:        now,
		})
	}

	// Reemplazo atómico: el plan viejo nunca convive con el nuevo.
	err = uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		_ repository.ComponentRepository,
		planRepo repository.MRPPlanRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		if err := planRepo.DeleteByOrder(order.ID); err != nil {
			return err
		}
		return planRepo.CreateBatch(entries)
	})
	if err != nil {
		return nil, err
	}

	rows, err := uc.planRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	return &dto.GenerateMRPResponse{
		Message: fmt.Sprintf("Plan MRP generado para el pedido %s: %d componentes, %d por pedir",
			order.OrderNumber, result.Summary.TotalComponents, result.Summary.ComponentsToOrder),
		Summary: toSummaryDTO(result.Summary),
		Plans:   toPlanEntryDTOs(rows),
	}, nil
}

// ListByOrder devuelve el plan persistido de un pedido, ordenado por
// fecha de pedido ascendente.
func (uc *MRPUseCase) ListByOrder(orderID string) (*dto.MRPPlanListResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.planRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return &dto.MRPPlanListResponse{
		OrderID: orderID,
		Plans:   toPlanEntryDTOs(rows),
	}, nil
}

// UpdateStatus avanza una línea de plan en el ciclo de compra.
// scheduled/urgent -> ordered -> received. Al recibir, acredita la cantidad
// pedida al inventario del componente y registra el movimiento, todo en una tx.
func (uc *MRPUseCase) UpdateStatus(ctx context.Context, planID, status string) (*dto.MRPPlanEntryDTO, error) {
	entry, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	switch status {
	case entity.PlanStatusOrdered:
		if entry.Status != entity.PlanStatusScheduled && entry.Status != entity.PlanStatusUrgent {
			return nil, domain.ErrConflict
		}
		if err := uc.planRepo.UpdateStatus(planID, status); err != nil {
			return nil, err
		}
	case entity.PlanStatusReceived:
		if entry.Status != entity.PlanStatusOrdered {
			return nil, domain.ErrConflict
		}
		component, err := uc.componentRepo.GetByID(entry.ComponentID)
		if err != nil {
			return nil, err
		}
		if component == nil {
			return nil, domain.ErrNotFound
		}
		newBalance := component.CurrentInventory.Add(entry.OrderQuantity)
		err = uc.txRunner.Run(ctx, func(
			_ repository.OrderRepository,
			componentRepo repository.ComponentRepository,
			planRepo repository.MRPPlanRepository,
			invTxRepo repository.InventoryTransactionRepository,
		) error {
			if err := planRepo.UpdateStatus(planID, status); err != nil {
				return err
			}
			if err := componentRepo.UpdateInventory(entry.ComponentID, newBalance); err != nil {
				return err
			}
			return invTxRepo.Create(&entity.InventoryTransaction{
				ID:              uuid.New().String(),
				ComponentID:     entry.ComponentID,
				Type:            entity.TxTypeReceipt,
				Quantity:        entry.OrderQuantity,
				BalanceAfter:    newBalance,
				Reference:       fmt.Sprintf("MRP-%s", planID),
				Notes:           "Recepción de pedido planificado",
				TransactionDate: time.Now(),
			})
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	entry.Status = status
	resp := &dto.MRPPlanEntryDTO{
		ID:               entry.ID,
		OrderID:          entry.OrderID,
		ComponentID:      entry.ComponentID,
		TotalRequired:    entry.TotalRequired,
		CurrentInventory: entry.CurrentInventory,
		NetRequirement:   entry.NetRequirement,
		OrderQuantity:    entry.OrderQuantity,
		OrderDate:        entry.OrderDate,
		ExpectedDelivery: entry.ExpectedDelivery,
		EstimatedCost:    entry.EstimatedCost,
		Status:           entry.Status,
	}
	return resp, nil
}

// buildPlanInput arma el snapshot de solo lectura para el planificador:
// líneas, BOM por tipo (en orden de inserción) y componentes referenciados.
func (uc *MRPUseCase) buildPlanInput(order *entity.Order, config *entity.ProductionConfig) (*mrp.PlanInput, error) {
	lineItems := make([]mrp.LineItem, 0, len(order.LineItems))
	boms := make(map[string][]mrp.BOMLine)
	var componentIDs []string
	seen := make(map[string]bool)

	for _, item := range order.LineItems {
		lineItems = append(lineItems, mrp.LineItem{
			HornTypeID: item.HornTypeID,
			Quantity:   item.Quantity,
		})
		if _, ok := boms[item.HornTypeID]; ok {
			continue
		}
		entries, err := uc.hornTypeRepo.ListBOM(item.HornTypeID)
		if err != nil {
			return nil, err
		}
		lines := make([]mrp.BOMLine, 0, len(entries))
		for _, bomEntry := range entries {
			lines = append(lines, mrp.BOMLine{
				ComponentID:     bomEntry.ComponentID,
				QuantityPerHorn: bomEntry.QuantityPerHorn,
			})
			if !seen[bomEntry.ComponentID] {
				seen[bomEntry.ComponentID] = true
				componentIDs = append(componentIDs, bomEntry.ComponentID)
			}
		}
		boms[item.HornTypeID] = lines
	}

	components := make(map[string]*entity.Component, len(componentIDs))
	if len(componentIDs) > 0 {
		list, err := uc.componentRepo.GetByIDs(componentIDs)
		if err != nil {
			return nil, err
		}
		for _, component := range list {
			components[component.ID] = component
		}
	}

	return &mrp.PlanInput{
		Deadline:   order.Deadline,
		LineItems:  lineItems,
		BOMs:       boms,
		Components: components,
		Config:     *config,
		Today:      time.Now(),
	}, nil
}

func toSummaryDTO(s mrp.Summary) dto.MRPSummaryDTO {
	return dto.MRPSummaryDTO{
		OrderQuantity:      s.OrderQuantity,
		WorkingDays:        s.WorkingDays,
		DailyProduction:    s.DailyProduction,
		ProductionStart:    s.ProductionStart,
		TotalComponents:    s.TotalComponents,
		ComponentsToOrder:  s.ComponentsToOrder,
		TotalEstimatedCost: s.TotalEstimatedCost,
		CapacityExceeded:   s.CapacityExceeded,
		CapacityShortfall:  s.CapacityShortfall,
	}
}

func toPlanEntryDTOs(rows []*repository.PlanRow) []dto.MRPPlanEntryDTO {
	plans := make([]dto.MRPPlanEntryDTO, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, dto.MRPPlanEntryDTO{
			ID:               row.ID,
			OrderID:          row.OrderID,
			ComponentID:      row.ComponentID,
			ComponentCode:    row.ComponentCode,
			ComponentName:    row.ComponentName,
			Unit:             row.Unit,
			TotalRequired:    row.TotalRequired,
			CurrentInventory: row.CurrentInventory,
			NetRequirement:   row.NetRequirement,
			OrderQuantity:    row.OrderQuantity,
			OrderDate:        row.OrderDate,
			ExpectedDelivery: row.ExpectedDelivery,
			SupplierName:     row.SupplierName,
			LeadTimeDays:     row.LeadTimeDays,
			EstimatedCost:    row.EstimatedCost,
			Status:           row.Status,
		})
	}
	return plans
}
