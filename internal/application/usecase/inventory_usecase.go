package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InventoryUseCase ajustes manuales de inventario y consulta de movimientos.
type InventoryUseCase struct {
	componentRepo repository.ComponentRepository
	txRepo        repository.InventoryTransactionRepository
	txRunner      TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	componentRepo repository.ComponentRepository,
	txRepo repository.InventoryTransactionRepository,
	txRunner TxRunner,
) *InventoryUseCase {
	return &InventoryUseCase{componentRepo: componentRepo, txRepo: txRepo, txRunner: txRunner}
}

// Adjust aplica un ajuste manual (positivo suma, negativo resta) y registra
// el movimiento en la misma transacción. El saldo nunca queda negativo.
func (uc *InventoryUseCase) Adjust(ctx context.Context, in dto.AdjustInventoryRequest) (*dto.AdjustInventoryResponse, error) {
	if in.ComponentID == "" || in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	component, err := uc.componentRepo.GetByID(in.ComponentID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, domain.ErrNotFound
	}
	newBalance := component.CurrentInventory.Add(in.Quantity)
	if newBalance.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	transaction := &entity.InventoryTransaction{
		ID:              uuid.New().String(),
		ComponentID:     component.ID,
		Type:            entity.TxTypeAdjustment,
		Quantity:        in.Quantity,
		BalanceAfter:    newBalance,
		Reference:       in.Reference,
		Notes:           in.Notes,
		TransactionDate: time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		componentRepo repository.ComponentRepository,
		_ repository.MRPPlanRepository,
		invTxRepo repository.InventoryTransactionRepository,
	) error {
		if err := componentRepo.UpdateInventory(component.ID, newBalance); err != nil {
			return err
		}
		return invTxRepo.Create(transaction)
	})
	if err != nil {
		return nil, err
	}

	component.CurrentInventory = newBalance
	component.UpdatedAt = time.Now()
	return &dto.AdjustInventoryResponse{
		Component:   *toComponentResponse(component),
		Transaction: *toTransactionResponse(transaction),
	}, nil
}

// ListTransactions devuelve los movimientos más recientes. componentID vacío
// lista los de todos los componentes.
func (uc *InventoryUseCase) ListTransactions(componentID string, limit int) ([]dto.InventoryTransactionResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	list, err := uc.txRepo.ListByComponent(componentID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryTransactionResponse, 0, len(list))
	for _, transaction := range list {
		items = append(items, *toTransactionResponse(transaction))
	}
	return items, nil
}

func toTransactionResponse(t *entity.InventoryTransaction) *dto.InventoryTransactionResponse {
	return &dto.InventoryTransactionResponse{
		ID:              t.ID,
		ComponentID:     t.ComponentID,
		Type:            t.Type,
		Quantity:        t.Quantity,
		BalanceAfter:    t.BalanceAfter,
		Reference:       t.Reference,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate,
	}
}
