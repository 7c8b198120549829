package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/application/usecase"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
)

func newInventoryUC(component *entity.Component) (*usecase.InventoryUseCase, *fakeComponentRepo, *fakeInvTxRepo) {
	components := newFakeComponentRepo(component)
	invTxs := &fakeInvTxRepo{}
	txRunner := &fakeTxRunner{
		orders:     newFakeOrderRepo(),
		components: components,
		plans:      newFakePlanRepo(components),
		invTxs:     invTxs,
	}
	return usecase.NewInventoryUseCase(components, invTxs, txRunner), components, invTxs
}

func TestInventoryAdjust_PositivoSumaYRegistraMovimiento(t *testing.T) {
	component := testComponent("comp-1", "DIAF-70", 100, 2)
	uc, _, invTxs := newInventoryUC(component)

	resp, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ComponentID: component.ID,
		Quantity:    decimal.NewFromInt(50),
		Reference:   "PO-001",
		Notes:       "Conteo físico",
	})
	require.NoError(t, err)

	assert.True(t, resp.Component.CurrentInventory.Equal(decimal.NewFromInt(150)))
	assert.True(t, component.CurrentInventory.Equal(decimal.NewFromInt(150)), "el saldo debe persistirse")

	require.Len(t, invTxs.transactions, 1)
	tx := invTxs.transactions[0]
	assert.Equal(t, entity.TxTypeAdjustment, tx.Type)
	assert.Equal(t, "PO-001", tx.Reference)
	assert.True(t, tx.BalanceAfter.Equal(decimal.NewFromInt(150)))
}

func TestInventoryAdjust_NegativoNoDejaSaldoNegativo(t *testing.T) {
	component := testComponent("comp-1", "DIAF-70", 100, 2)
	uc, _, invTxs := newInventoryUC(component)

	_, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ComponentID: component.ID,
		Quantity:    decimal.NewFromInt(-150),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, component.CurrentInventory.Equal(decimal.NewFromInt(100)), "el saldo no debe cambiar")
	assert.Empty(t, invTxs.transactions)

	// Restar hasta exactamente cero sí es válido.
	resp, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ComponentID: component.ID,
		Quantity:    decimal.NewFromInt(-100),
	})
	require.NoError(t, err)
	assert.True(t, resp.Component.CurrentInventory.IsZero())
}

func TestInventoryAdjust_Validaciones(t *testing.T) {
	component := testComponent("comp-1", "DIAF-70", 100, 2)
	uc, _, _ := newInventoryUC(component)
	ctx := context.Background()

	_, err := uc.Adjust(ctx, dto.AdjustInventoryRequest{ComponentID: component.ID, Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ajuste de cantidad cero no tiene sentido")

	_, err = uc.Adjust(ctx, dto.AdjustInventoryRequest{ComponentID: "no-existe", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryListTransactions_FiltraPorComponente(t *testing.T) {
	component := testComponent("comp-1", "DIAF-70", 100, 2)
	uc, _, invTxs := newInventoryUC(component)
	ctx := context.Background()

	_, err := uc.Adjust(ctx, dto.AdjustInventoryRequest{ComponentID: component.ID, Quantity: decimal.NewFromInt(10)})
	require.NoError(t, err)
	_, err = uc.Adjust(ctx, dto.AdjustInventoryRequest{ComponentID: component.ID, Quantity: decimal.NewFromInt(-5)})
	require.NoError(t, err)
	require.Len(t, invTxs.transactions, 2)

	list, err := uc.ListTransactions(component.ID, 0) // límite 0 usa el default
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.ListTransactions("otro-componente", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
