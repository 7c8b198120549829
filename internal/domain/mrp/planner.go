// Package mrp implementa el planificador de requerimientos de materiales (MRP):
// dado un pedido, los BOM de sus tipos de bocina, el inventario de componentes
// y la configuración de producción, calcula qué pedir, cuánto y cuándo.
//
// El planificador es un servicio de dominio puro: sin I/O, sin estado interno
// y con "hoy" como parámetro explícito, de modo que dos corridas con el mismo
// input producen exactamente el mismo plan.
package mrp

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Errores del planificador.
var (
	// ErrInvalidConfig configuración de producción inválida: capacidad <= 0
	// o días laborables fuera de [1,7]. Fatal para la corrida.
	ErrInvalidConfig = errors.New("mrp: configuración de producción inválida")

	// ErrEmptyOrder el pedido no tiene líneas, o ninguno de sus tipos de bocina
	// tiene componentes en su BOM. No es un crash: el caller lo presenta como
	// advertencia (un pedido puede referenciar un tipo aún sin configurar).
	ErrEmptyOrder = errors.New("mrp: el pedido no tiene demanda de componentes")
)

// LineItem línea del pedido tal como la ve el planificador.
type LineItem struct {
	HornTypeID string
	Quantity   decimal.Decimal
}

// BOMLine línea de BOM resuelta: componente + cantidad por bocina.
type BOMLine struct {
	ComponentID     string
	QuantityPerHorn decimal.Decimal
}

// PlanInput snapshot de solo lectura con todo lo que necesita una corrida.
// Los repositorios lo arman; el planificador no consulta nada más.
type PlanInput struct {
	Deadline   time.Time
	LineItems  []LineItem
	BOMs       map[string][]BOMLine         // por HornTypeID, en orden de inserción
	Components map[string]*entity.Component // por ComponentID
	Config     entity.ProductionConfig
	Today      time.Time // momento de la corrida, explícito para determinismo
}

// Entry línea del plan para un componente. Una sola entrada por componente,
// con la demanda sumada entre todas las líneas del pedido que lo comparten.
type Entry struct {
	ComponentID      string
	TotalRequired    decimal.Decimal
	CurrentInventory decimal.Decimal
	NetRequirement   decimal.Decimal
	OrderQuantity    decimal.Decimal
	OrderDate        *time.Time
	ExpectedDelivery *time.Time
	EstimatedCost    decimal.Decimal
	Status           string // sufficient | scheduled | urgent
	OverMaxStock     bool   // inventario actual por encima del máximo (alerta, no afecta el cálculo)
}

// Summary datos agregados de la corrida.
type Summary struct {
	OrderQuantity      decimal.Decimal // total de bocinas pedidas
	WorkingDays        int
	DailyProduction    decimal.Decimal // ritmo requerido (puede exceder la capacidad)
	ProductionStart    time.Time
	TotalComponents    int
	ComponentsToOrder  int
	TotalEstimatedCost decimal.Decimal
	CapacityExceeded   bool            // el ritmo requerido supera la capacidad diaria
	CapacityShortfall  decimal.Decimal // bocinas/día por encima de la capacidad (0 si no aplica)
}

// PlanResult resultado completo: resumen + una entrada por componente,
// en orden de primera aparición en los BOM (determinista).
type PlanResult struct {
	Summary Summary
	Entries []Entry
}

// GeneratePlan ejecuta la corrida MRP completa sobre el snapshot dado.
//
// Pasos: derivar el calendario de producción, agregar la demanda por
// componente entre líneas, calcular requerimiento neto y tamaño/fecha de
// pedido por componente, y armar el resumen.
func GeneratePlan(in PlanInput) (*PlanResult, error) {
	cfg := in.Config
	if cfg.DailyProductionCapacity <= 0 || cfg.WorkingDaysPerWeek < 1 || cfg.WorkingDaysPerWeek > 7 {
		return nil, ErrInvalidConfig
	}
	if len(in.LineItems) == 0 {
		return nil, ErrEmptyOrder
	}

	// ── Paso 1: calendario ────────────────────────────────────────────────────
	today := dateOnly(in.Today)
	deadline := dateOnly(in.Deadline)

	orderQuantity := decimal.Zero
	for _, item := range in.LineItems {
		orderQuantity = orderQuantity.Add(item.Quantity)
	}

	availableDays := daysBetween(today, deadline)
	workingDays := availableDays * cfg.WorkingDaysPerWeek / 7
	if workingDays < 1 {
		// Deadline en el pasado o demasiado cerca: forzamos 1 para no dividir por cero.
		workingDays = 1
	}
	workingDaysDec := decimal.NewFromInt(int64(workingDays))

	dailyProduction := orderQuantity.Div(workingDaysDec)
	capacity := decimal.NewFromInt(int64(cfg.DailyProductionCapacity))
	capacityExceeded := dailyProduction.GreaterThan(capacity)
	shortfall := decimal.Zero
	if capacityExceeded {
		// La capacidad es consultiva: se reporta el déficit pero la corrida
		// continúa con el ritmo requerido.
		shortfall = dailyProduction.Sub(capacity)
	}

	// La producción arranca de inmediato y corre workingDays días al ritmo calculado.
	productionStart := today

	// ── Paso 2: demanda agregada por componente ───────────────────────────────
	// Mapa + slice de orden de aparición para salida determinista.
	totalRequired := make(map[string]decimal.Decimal)
	var componentOrder []string

	for _, item := range in.LineItems {
		for _, bomLine := range in.BOMs[item.HornTypeID] {
			if _, seen := totalRequired[bomLine.ComponentID]; !seen {
				componentOrder = append(componentOrder, bomLine.ComponentID)
				totalRequired[bomLine.ComponentID] = decimal.Zero
			}
			demand := item.Quantity.Mul(bomLine.QuantityPerHorn)
			totalRequired[bomLine.ComponentID] = totalRequired[bomLine.ComponentID].Add(demand)
		}
	}

	if len(componentOrder) == 0 {
		return nil, ErrEmptyOrder
	}

	// ── Paso 3: requerimiento neto y pedido por componente ────────────────────
	safetyDays := decimal.NewFromInt(int64(cfg.SafetyStockDays))
	entries := make([]Entry, 0, len(componentOrder))
	componentsToOrder := 0
	totalCost := decimal.Zero

	for _, componentID := range componentOrder {
		component, ok := in.Components[componentID]
		if !ok {
			// Violación de contrato: el caller debe resolver todos los componentes.
			return nil, fmt.Errorf("mrp: componente %s referenciado en BOM no fue resuelto", componentID)
		}

		required := totalRequired[componentID]
		entry := Entry{
			ComponentID:      componentID,
			TotalRequired:    required,
			CurrentInventory: component.CurrentInventory,
			EstimatedCost:    decimal.Zero,
			OverMaxStock: component.MaxStockLevel.GreaterThan(decimal.Zero) &&
				component.CurrentInventory.GreaterThan(component.MaxStockLevel),
		}

		net := required.Sub(component.CurrentInventory)
		if net.LessThanOrEqual(decimal.Zero) {
			entry.NetRequirement = decimal.Zero
			entry.OrderQuantity = decimal.Zero
			entry.Status = entity.PlanStatusSufficient
			entries = append(entries, entry)
			continue
		}
		entry.NetRequirement = net

		// Buffer: safety_stock_days de consumo adicional al ritmo diario del componente.
		buffer := required.Div(workingDaysDec).Mul(safetyDays)
		orderQty := net.Add(buffer)
		if orderQty.LessThan(component.MinimumOrderQuantity) {
			// El MOQ del proveedor es un piso duro.
			orderQty = component.MinimumOrderQuantity
		}
		entry.OrderQuantity = orderQty

		orderDate := productionStart.AddDate(0, 0, -(component.LeadTimeDays + cfg.SafetyStockDays))
		if orderDate.Before(today) {
			// Ya deberíamos haber pedido: se pide hoy y el deadline queda en riesgo.
			orderDate = today
			entry.Status = entity.PlanStatusUrgent
		} else {
			entry.Status = entity.PlanStatusScheduled
		}
		delivery := orderDate.AddDate(0, 0, component.LeadTimeDays)

		entry.OrderDate = &orderDate
		entry.ExpectedDelivery = &delivery
		entry.EstimatedCost = orderQty.Mul(component.UnitCost)

		componentsToOrder++
		totalCost = totalCost.Add(entry.EstimatedCost)
		entries = append(entries, entry)
	}

	// ── Paso 4: resumen ───────────────────────────────────────────────────────
	return &PlanResult{
		Summary: Summary{
			OrderQuantity:      orderQuantity,
			WorkingDays:        workingDays,
			DailyProduction:    dailyProduction,
			ProductionStart:    productionStart,
			TotalComponents:    len(entries),
			ComponentsToOrder:  componentsToOrder,
			TotalEstimatedCost: totalCost,
			CapacityExceeded:   capacityExceeded,
			CapacityShortfall:  shortfall,
		},
		Entries: entries,
	}, nil
}

// dateOnly trunca un instante a su fecha (medianoche en la zona original).
// Todo el cálculo MRP trabaja con granularidad de día.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween días calendario entre dos fechas (negativo si to < from).
// Normaliza ambas a medianoche UTC para que un cambio de horario de verano
// dentro del rango no recorte un día.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
