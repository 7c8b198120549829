package entity

import "time"

// ProductionConfig registro único de capacidad y restricciones de producción.
// Solo se modifica vía el endpoint de configuración; el planificador lo lee tal cual.
type ProductionConfig struct {
	ID                      string
	DailyProductionCapacity int // bocinas por día
	WorkingDaysPerWeek      int // 1..7
	MaxInventoryDays        int // máximo de días de inventario a mantener
	SafetyStockDays         int // días de colchón de stock de seguridad
	UpdatedAt               time.Time
}
