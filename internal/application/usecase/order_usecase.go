package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase casos de uso para pedidos de clientes.
type OrderUseCase struct {
	repo         repository.OrderRepository
	hornTypeRepo repository.HornTypeRepository
	txRunner     TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, hornTypeRepo repository.HornTypeRepository, txRunner TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, hornTypeRepo: hornTypeRepo, txRunner: txRunner}
}

var validOrderStatus = map[string]bool{
	entity.OrderStatusPending:    true,
	entity.OrderStatusInProgress: true,
	entity.OrderStatusCompleted:  true,
	entity.OrderStatusCancelled:  true,
}

// Create crea un pedido con sus líneas. Sin número de pedido genera uno
// con el formato ORD-<timestamp>.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" || in.Deadline.IsZero() || len(in.LineItems) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.OrderStatusPending
	}
	if !validOrderStatus[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	lineItems, err := uc.buildLineItems(in.LineItems)
	if err != nil {
		return nil, err
	}
	orderNumber := in.OrderNumber
	if orderNumber == "" {
		orderNumber = fmt.Sprintf("ORD-%s", time.Now().Format("20060102150405"))
	}
	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		OrderNumber:  orderNumber,
		CustomerName: in.CustomerName,
		OrderDate:    now,
		Deadline:     in.Deadline,
		Status:       in.Status,
		Notes:        in.Notes,
		LineItems:    lineItems,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i := range order.LineItems {
		order.LineItems[i].OrderID = order.ID
	}
	// Pedido y líneas en la misma transacción: nunca un pedido a medias.
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.ComponentRepository,
		_ repository.MRPPlanRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// Update actualiza los campos presentes. LineItems no nil reemplaza todas
// las líneas; el plan MRP existente queda obsoleto hasta regenerar.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.OrderNumber != nil && *in.OrderNumber != "" {
		order.OrderNumber = *in.OrderNumber
	}
	if in.CustomerName != nil {
		order.CustomerName = *in.CustomerName
	}
	if in.Deadline != nil {
		order.Deadline = *in.Deadline
	}
	if in.Status != nil {
		if !validOrderStatus[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	var newItems []entity.OrderLineItem
	if in.LineItems != nil {
		newItems, err = uc.buildLineItems(in.LineItems)
		if err != nil {
			return nil, err
		}
		for i := range newItems {
			newItems[i].OrderID = order.ID
		}
	}
	order.UpdatedAt = time.Now()
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.ComponentRepository,
		_ repository.MRPPlanRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if newItems != nil {
			if err := orderRepo.ReplaceLineItems(order.ID, newItems); err != nil {
				return err
			}
			order.LineItems = newItems
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos con paginación.
func (uc *OrderUseCase) List(page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, order := range list {
		items = append(items, *toOrderResponse(order))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un pedido, sus líneas y sus planes MRP (cascada en DB).
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// buildLineItems valida y convierte las líneas del request. Cada tipo de
// bocina debe existir y cada cantidad ser > 0.
func (uc *OrderUseCase) buildLineItems(in []dto.OrderLineItemRequest) ([]entity.OrderLineItem, error) {
	items := make([]entity.OrderLineItem, 0, len(in))
	for _, line := range in {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		hornType, err := uc.hornTypeRepo.GetByID(line.HornTypeID)
		if err != nil {
			return nil, err
		}
		if hornType == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.OrderLineItem{
			ID:         uuid.New().String(),
			HornTypeID: line.HornTypeID,
			Quantity:   line.Quantity,
		})
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.OrderLineItemResponse, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		lines = append(lines, dto.OrderLineItemResponse{
			ID:         item.ID,
			HornTypeID: item.HornTypeID,
			Quantity:   item.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Quantity:     o.TotalQuantity(),
		OrderDate:    o.OrderDate,
		Deadline:     o.Deadline,
		Status:       o.Status,
		Notes:        o.Notes,
		LineItems:    lines,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
