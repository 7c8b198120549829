package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineItemRequest línea de pedido en requests de creación/actualización.
type OrderLineItemRequest struct {
	HornTypeID string          `json:"horn_type_id"`
	Quantity   decimal.Decimal `json:"quantity"` // debe ser > 0
}

// CreateOrderRequest body para POST /api/orders.
// OrderNumber vacío genera uno con el formato ORD-<timestamp>.
type CreateOrderRequest struct {
	OrderNumber  string                 `json:"order_number,omitempty"`
	CustomerName string                 `json:"customer_name"`
	Deadline     time.Time              `json:"deadline"`
	Status       string                 `json:"status,omitempty"` // default pending
	Notes        string                 `json:"notes,omitempty"`
	LineItems    []OrderLineItemRequest `json:"line_items"`
}

// UpdateOrderRequest body para PUT /api/orders/{id}. LineItems no nil
// reemplaza todas las líneas existentes.
type UpdateOrderRequest struct {
	OrderNumber  *string                `json:"order_number,omitempty"`
	CustomerName *string                `json:"customer_name,omitempty"`
	Deadline     *time.Time             `json:"deadline,omitempty"`
	Status       *string                `json:"status,omitempty"`
	Notes        *string                `json:"notes,omitempty"`
	LineItems    []OrderLineItemRequest `json:"line_items,omitempty"`
}

// OrderLineItemResponse línea de pedido en respuestas.
type OrderLineItemResponse struct {
	ID         string          `json:"id"`
	HornTypeID string          `json:"horn_type_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// OrderResponse representación HTTP de un pedido.
// Quantity es el total entre líneas, solo para presentación.
type OrderResponse struct {
	ID           string                  `json:"id"`
	OrderNumber  string                  `json:"order_number"`
	CustomerName string                  `json:"customer_name"`
	Quantity     decimal.Decimal         `json:"quantity"`
	OrderDate    time.Time               `json:"order_date"`
	Deadline     time.Time               `json:"deadline"`
	Status       string                  `json:"status"`
	Notes        string                  `json:"notes,omitempty"`
	LineItems    []OrderLineItemResponse `json:"line_items"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
