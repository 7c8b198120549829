package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/spra-api/internal/application/usecase"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/mrp"
)

// mrpFixture arma el mundo mínimo para correr el planificador de punta a punta:
// dos componentes (uno con faltante, otro con inventario de sobra), un tipo de
// bocina con BOM y un pedido de 1000 unidades con deadline a 14 días.
type mrpFixture struct {
	uc         *usecase.MRPUseCase
	order      *entity.Order
	diafragma  *entity.Component // inventario 100 -> faltante
	tornillo   *entity.Component // inventario 100000 -> suficiente
	planRepo   *fakePlanRepo
	components *fakeComponentRepo
	invTxs     *fakeInvTxRepo
}

func newMRPFixture(t *testing.T) *mrpFixture {
	t.Helper()

	diafragma := testComponent("comp-diaf", "DIAF-70", 100, 2)
	tornillo := testComponent("comp-torn", "TORN-M4", 100000, 1)
	components := newFakeComponentRepo(diafragma, tornillo)

	hornTypes := newFakeHornTypeRepo()
	hornType := &entity.HornType{ID: "ht-std", Code: "BOC-STD", Name: "Bocina estándar 12V"}
	require.NoError(t, hornTypes.Create(hornType))
	require.NoError(t, hornTypes.AddBOMEntry(&entity.BOMEntry{
		ID: "bom-1", HornTypeID: hornType.ID, ComponentID: diafragma.ID,
		QuantityPerHorn: decimal.NewFromInt(1),
	}))
	require.NoError(t, hornTypes.AddBOMEntry(&entity.BOMEntry{
		ID: "bom-2", HornTypeID: hornType.ID, ComponentID: tornillo.ID,
		QuantityPerHorn: decimal.NewFromInt(4),
	}))

	order := &entity.Order{
		ID:           "order-1",
		OrderNumber:  "ORD-20260830000001",
		CustomerName: "Autopartes del Sur",
		OrderDate:    time.Now(),
		Deadline:     time.Now().AddDate(0, 0, 14),
		Status:       entity.OrderStatusPending,
		LineItems: []entity.OrderLineItem{
			{ID: "line-1", OrderID: "order-1", HornTypeID: hornType.ID, Quantity: decimal.NewFromInt(1000)},
		},
	}
	orders := newFakeOrderRepo(order)

	planRepo := newFakePlanRepo(components)
	invTxs := &fakeInvTxRepo{}
	configRepo := &fakeConfigRepo{cfg: &entity.ProductionConfig{
		ID:                      "cfg-1",
		DailyProductionCapacity: 4000,
		WorkingDaysPerWeek:      7,
		MaxInventoryDays:        30,
		SafetyStockDays:         2,
	}}
	configUC := usecase.NewProductionConfigUseCase(configRepo)
	txRunner := &fakeTxRunner{orders: orders, components: components, plans: planRepo, invTxs: invTxs}

	return &mrpFixture{
		uc:         usecase.NewMRPUseCase(orders, hornTypes, components, planRepo, invTxs, configUC, txRunner),
		order:      order,
		diafragma:  diafragma,
		tornillo:   tornillo,
		planRepo:   planRepo,
		components: components,
		invTxs:     invTxs,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate
// ──────────────────────────────────────────────────────────────────────────────

func TestMRPGenerate_PersisteUnaLineaPorComponente(t *testing.T) {
	f := newMRPFixture(t)

	resp, err := f.uc.Generate(context.Background(), f.order.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 2, resp.Summary.TotalComponents)
	assert.Equal(t, 1, resp.Summary.ComponentsToOrder, "solo el diafragma tiene faltante")
	assert.False(t, resp.Summary.CapacityExceeded, "1000/14 bocinas por día no supera la capacidad")
	require.Len(t, resp.Plans, 2)

	byComponent := make(map[string]string, len(resp.Plans))
	for _, plan := range resp.Plans {
		byComponent[plan.ComponentID] = plan.Status
	}
	assert.Equal(t, entity.PlanStatusUrgent, byComponent[f.diafragma.ID],
		"lead 5 + colchón 2 deja la fecha de pedido en el pasado: urgente")
	assert.Equal(t, entity.PlanStatusSufficient, byComponent[f.tornillo.ID])

	// Faltante neto del diafragma: 1000 requeridos - 100 en inventario.
	var net, qty decimal.Decimal
	for _, plan := range resp.Plans {
		if plan.ComponentID == f.diafragma.ID {
			net, qty = plan.NetRequirement, plan.OrderQuantity
		}
	}
	assert.True(t, net.Equal(decimal.NewFromInt(900)), "neto esperado 900, obtenido %s", net)
	assert.True(t, qty.GreaterThan(net),
		"la cantidad a pedir incluye el buffer de seguridad por encima del neto")
}

func TestMRPGenerate_RegenerarReemplazaElPlan(t *testing.T) {
	f := newMRPFixture(t)
	ctx := context.Background()

	_, err := f.uc.Generate(ctx, f.order.ID)
	require.NoError(t, err)
	firstIDs := make(map[string]bool)
	for _, e := range f.planRepo.entries {
		firstIDs[e.ID] = true
	}

	_, err = f.uc.Generate(ctx, f.order.ID)
	require.NoError(t, err)

	assert.Len(t, f.planRepo.entries, 2, "regenerar no acumula líneas viejas")
	for _, e := range f.planRepo.entries {
		assert.False(t, firstIDs[e.ID], "las líneas de la segunda corrida reemplazan a las de la primera")
	}
}

func TestMRPGenerate_PedidoInexistente_RetornaNotFound(t *testing.T) {
	f := newMRPFixture(t)

	_, err := f.uc.Generate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMRPGenerate_PedidoSinBOM_RetornaEmptyOrder(t *testing.T) {
	f := newMRPFixture(t)
	// Pedido que referencia un tipo de bocina sin BOM configurado.
	f.order.LineItems = []entity.OrderLineItem{
		{ID: "line-x", OrderID: f.order.ID, HornTypeID: "ht-sin-bom", Quantity: decimal.NewFromInt(10)},
	}

	_, err := f.uc.Generate(context.Background(), f.order.ID)
	assert.ErrorIs(t, err, mrp.ErrEmptyOrder,
		"pedido sin demanda de componentes debe ser advertencia, no error interno")
	assert.Empty(t, f.planRepo.entries, "no debe persistirse ningún plan")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus — ciclo de compra
// ──────────────────────────────────────────────────────────────────────────────

// planEntryFor devuelve la línea de plan persistida de un componente.
func planEntryFor(t *testing.T, f *mrpFixture, componentID string) *entity.MRPPlanEntry {
	t.Helper()
	for _, e := range f.planRepo.entries {
		if e.ComponentID == componentID {
			return e
		}
	}
	t.Fatalf("no hay línea de plan para el componente %s", componentID)
	return nil
}

func TestMRPUpdateStatus_UrgentAOrdered(t *testing.T) {
	f := newMRPFixture(t)
	ctx := context.Background()
	_, err := f.uc.Generate(ctx, f.order.ID)
	require.NoError(t, err)

	entry := planEntryFor(t, f, f.diafragma.ID)
	resp, err := f.uc.UpdateStatus(ctx, entry.ID, entity.PlanStatusOrdered)
	require.NoError(t, err)

	assert.Equal(t, entity.PlanStatusOrdered, resp.Status)
	assert.Equal(t, entity.PlanStatusOrdered, entry.Status, "el estado debe persistirse")
	assert.Empty(t, f.invTxs.transactions, "marcar como pedido no mueve inventario")
}

func TestMRPUpdateStatus_OrderedAReceived_AcreditaInventario(t *testing.T) {
	f := newMRPFixture(t)
	ctx := context.Background()
	_, err := f.uc.Generate(ctx, f.order.ID)
	require.NoError(t, err)

	entry := planEntryFor(t, f, f.diafragma.ID)
	_, err = f.uc.UpdateStatus(ctx, entry.ID, entity.PlanStatusOrdered)
	require.NoError(t, err)

	inventoryBefore := f.diafragma.CurrentInventory
	resp, err := f.uc.UpdateStatus(ctx, entry.ID, entity.PlanStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusReceived, resp.Status)

	expected := inventoryBefore.Add(entry.OrderQuantity)
	assert.True(t, f.diafragma.CurrentInventory.Equal(expected),
		"recibir acredita la cantidad pedida: esperado %s, obtenido %s",
		expected, f.diafragma.CurrentInventory)

	require.Len(t, f.invTxs.transactions, 1)
	tx := f.invTxs.transactions[0]
	assert.Equal(t, entity.TxTypeReceipt, tx.Type)
	assert.Equal(t, f.diafragma.ID, tx.ComponentID)
	assert.Equal(t, "MRP-"+entry.ID, tx.Reference)
	assert.True(t, tx.Quantity.Equal(entry.OrderQuantity))
	assert.True(t, tx.BalanceAfter.Equal(expected))
}

func TestMRPUpdateStatus_TransicionesInvalidas(t *testing.T) {
	f := newMRPFixture(t)
	ctx := context.Background()
	_, err := f.uc.Generate(ctx, f.order.ID)
	require.NoError(t, err)

	urgent := planEntryFor(t, f, f.diafragma.ID)
	sufficient := planEntryFor(t, f, f.tornillo.ID)

	// received sin pasar por ordered
	_, err = f.uc.UpdateStatus(ctx, urgent.ID, entity.PlanStatusReceived)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// una línea sufficient no tiene nada que pedir
	_, err = f.uc.UpdateStatus(ctx, sufficient.ID, entity.PlanStatusOrdered)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// estado destino desconocido
	_, err = f.uc.UpdateStatus(ctx, urgent.ID, "banana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// doble recepción: la segunda no debe volver a acreditar inventario
	_, err = f.uc.UpdateStatus(ctx, urgent.ID, entity.PlanStatusOrdered)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, urgent.ID, entity.PlanStatusReceived)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, urgent.ID, entity.PlanStatusReceived)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, f.invTxs.transactions, 1)

	// línea inexistente
	_, err = f.uc.UpdateStatus(ctx, "plan-fantasma", entity.PlanStatusOrdered)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestMRPListByOrder_IncluyeDatosDelComponente(t *testing.T) {
	f := newMRPFixture(t)
	ctx := context.Background()
	_, err := f.uc.Generate(ctx, f.order.ID)
	require.NoError(t, err)

	resp, err := f.uc.ListByOrder(f.order.ID)
	require.NoError(t, err)
	assert.Equal(t, f.order.ID, resp.OrderID)
	require.Len(t, resp.Plans, 2)

	for _, plan := range resp.Plans {
		assert.NotEmpty(t, plan.ComponentCode, "el listado une código y nombre del componente")
		assert.NotEmpty(t, plan.ComponentName)
	}
}

func TestMRPListByOrder_PedidoInexistente(t *testing.T) {
	f := newMRPFixture(t)
	_, err := f.uc.ListByOrder("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
