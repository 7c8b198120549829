package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustInventoryRequest body para POST /api/inventory/adjust.
// Quantity positiva suma, negativa resta.
type AdjustInventoryRequest struct {
	ComponentID string          `json:"component_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// InventoryTransactionResponse movimiento de inventario para la UI.
type InventoryTransactionResponse struct {
	ID              string          `json:"id"`
	ComponentID     string          `json:"component_id"`
	Type            string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// AdjustInventoryResponse respuesta del ajuste: componente actualizado + movimiento.
type AdjustInventoryResponse struct {
	Component   ComponentResponse            `json:"component"`
	Transaction InventoryTransactionResponse `json:"transaction"`
}
