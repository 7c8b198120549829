package usecase_test

// Fakes en memoria de los puertos de persistencia, compartidos por los
// tests del paquete. Implementan solo lo que los use cases ejercitan;
// el resto devuelve cero-valores.

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ── Componentes ───────────────────────────────────────────────────────────────

type fakeComponentRepo struct {
	components map[string]*entity.Component
}

func newFakeComponentRepo(components ...*entity.Component) *fakeComponentRepo {
	repo := &fakeComponentRepo{components: make(map[string]*entity.Component)}
	for _, c := range components {
		repo.components[c.ID] = c
	}
	return repo
}

func (r *fakeComponentRepo) Create(c *entity.Component) error {
	r.components[c.ID] = c
	return nil
}

func (r *fakeComponentRepo) GetByID(id string) (*entity.Component, error) {
	return r.components[id], nil
}

func (r *fakeComponentRepo) GetByCode(code string) (*entity.Component, error) {
	for _, c := range r.components {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeComponentRepo) GetByIDs(ids []string) ([]*entity.Component, error) {
	var list []*entity.Component
	for _, id := range ids {
		if c, ok := r.components[id]; ok {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeComponentRepo) Update(c *entity.Component) error {
	r.components[c.ID] = c
	return nil
}

func (r *fakeComponentRepo) UpdateInventory(componentID string, newBalance decimal.Decimal) error {
	if c, ok := r.components[componentID]; ok {
		c.CurrentInventory = newBalance
	}
	return nil
}

func (r *fakeComponentRepo) List(limit, offset int) ([]*entity.Component, error) {
	var list []*entity.Component
	for _, c := range r.components {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *fakeComponentRepo) Delete(id string) error {
	delete(r.components, id)
	return nil
}

// ── Tipos de bocina + BOM ─────────────────────────────────────────────────────

type fakeHornTypeRepo struct {
	types map[string]*entity.HornType
	boms  map[string][]*entity.BOMEntry // por HornTypeID, en orden de inserción
}

func newFakeHornTypeRepo() *fakeHornTypeRepo {
	return &fakeHornTypeRepo{
		types: make(map[string]*entity.HornType),
		boms:  make(map[string][]*entity.BOMEntry),
	}
}

func (r *fakeHornTypeRepo) Create(h *entity.HornType) error {
	r.types[h.ID] = h
	return nil
}

func (r *fakeHornTypeRepo) GetByID(id string) (*entity.HornType, error) {
	return r.types[id], nil
}

func (r *fakeHornTypeRepo) GetByCode(code string) (*entity.HornType, error) {
	for _, h := range r.types {
		if h.Code == code {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeHornTypeRepo) Update(h *entity.HornType) error {
	r.types[h.ID] = h
	return nil
}

func (r *fakeHornTypeRepo) List(limit, offset int) ([]*entity.HornType, error) {
	var list []*entity.HornType
	for _, h := range r.types {
		list = append(list, h)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *fakeHornTypeRepo) Delete(id string) error {
	delete(r.types, id)
	delete(r.boms, id)
	return nil
}

func (r *fakeHornTypeRepo) ListBOM(hornTypeID string) ([]*entity.BOMEntry, error) {
	return r.boms[hornTypeID], nil
}

func (r *fakeHornTypeRepo) GetBOMEntry(hornTypeID, componentID string) (*entity.BOMEntry, error) {
	for _, e := range r.boms[hornTypeID] {
		if e.ComponentID == componentID {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeHornTypeRepo) AddBOMEntry(entry *entity.BOMEntry) error {
	r.boms[entry.HornTypeID] = append(r.boms[entry.HornTypeID], entry)
	return nil
}

func (r *fakeHornTypeRepo) UpdateBOMEntry(entry *entity.BOMEntry) error {
	for i, e := range r.boms[entry.HornTypeID] {
		if e.ID == entry.ID {
			r.boms[entry.HornTypeID][i] = entry
		}
	}
	return nil
}

func (r *fakeHornTypeRepo) RemoveBOMEntry(hornTypeID, componentID string) error {
	entries := r.boms[hornTypeID]
	for i, e := range entries {
		if e.ComponentID == componentID {
			r.boms[hornTypeID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) ReplaceLineItems(orderID string, items []entity.OrderLineItem) error {
	if o, ok := r.orders[orderID]; ok {
		o.LineItems = items
	}
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.orders {
		list = append(list, o)
	}
	return list, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

// ── Planes MRP ────────────────────────────────────────────────────────────────

type fakePlanRepo struct {
	entries    []*entity.MRPPlanEntry
	components *fakeComponentRepo // para enriquecer PlanRow en ListByOrder
}

func newFakePlanRepo(components *fakeComponentRepo) *fakePlanRepo {
	return &fakePlanRepo{components: components}
}

func (r *fakePlanRepo) DeleteByOrder(orderID string) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.OrderID != orderID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

func (r *fakePlanRepo) CreateBatch(entries []*entity.MRPPlanEntry) error {
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *fakePlanRepo) GetByID(id string) (*entity.MRPPlanEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) ListByOrder(orderID string) ([]*repository.PlanRow, error) {
	var rows []*repository.PlanRow
	for _, e := range r.entries {
		if e.OrderID != orderID {
			continue
		}
		row := &repository.PlanRow{
			ID:               e.ID,
			OrderID:          e.OrderID,
			ComponentID:      e.ComponentID,
			TotalRequired:    e.TotalRequired,
			CurrentInventory: e.CurrentInventory,
			NetRequirement:   e.NetRequirement,
			OrderQuantity:    e.OrderQuantity,
			OrderDate:        e.OrderDate,
			ExpectedDelivery: e.ExpectedDelivery,
			EstimatedCost:    e.EstimatedCost,
			Status:           e.Status,
		}
		if c, _ := r.components.GetByID(e.ComponentID); c != nil {
			row.ComponentCode = c.Code
			row.ComponentName = c.Name
			row.Unit = c.Unit
			row.SupplierName = c.SupplierName
			row.LeadTimeDays = c.LeadTimeDays
		}
		rows = append(rows, row)
	}
	// order_date ascendente, sin fecha al final (mismo orden que la DB)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].OrderDate, rows[j].OrderDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return rows, nil
}

func (r *fakePlanRepo) UpdateStatus(id, status string) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.Status = status
		}
	}
	return nil
}

// ── Movimientos de inventario ─────────────────────────────────────────────────

type fakeInvTxRepo struct {
	transactions []*entity.InventoryTransaction
}

func (r *fakeInvTxRepo) Create(tx *entity.InventoryTransaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeInvTxRepo) ListByComponent(componentID string, limit int) ([]*entity.InventoryTransaction, error) {
	var list []*entity.InventoryTransaction
	for _, tx := range r.transactions {
		if componentID == "" || tx.ComponentID == componentID {
			list = append(list, tx)
		}
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// ── Configuración de producción ───────────────────────────────────────────────

type fakeConfigRepo struct {
	cfg *entity.ProductionConfig
}

func (r *fakeConfigRepo) Get() (*entity.ProductionConfig, error) {
	return r.cfg, nil
}

func (r *fakeConfigRepo) Save(cfg *entity.ProductionConfig) error {
	r.cfg = cfg
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes
// (sin transaccionalidad real; los tests verifican el efecto neto).
type fakeTxRunner struct {
	orders     *fakeOrderRepo
	components *fakeComponentRepo
	plans      *fakePlanRepo
	invTxs     *fakeInvTxRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	componentRepo repository.ComponentRepository,
	planRepo repository.MRPPlanRepository,
	invTxRepo repository.InventoryTransactionRepository,
) error) error {
	return fn(r.orders, r.components, r.plans, r.invTxs)
}

// ── Constructores de entidades de prueba ─────────────────────────────────────

func testComponent(id, code string, inventory, cost int64) *entity.Component {
	now := time.Now()
	return &entity.Component{
		ID:                   id,
		Code:                 code,
		Name:                 "Componente " + code,
		Unit:                 "pieces",
		CurrentInventory:     decimal.NewFromInt(inventory),
		MinStockLevel:        decimal.NewFromInt(10),
		MaxStockLevel:        decimal.NewFromInt(1000000),
		LeadTimeDays:         5,
		SupplierName:         "Proveedor " + code,
		UnitCost:             decimal.NewFromInt(cost),
		MinimumOrderQuantity: decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
