package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

var _ repository.ProductionConfigRepository = (*ProductionConfigRepo)(nil)

// ProductionConfigRepo implementación del puerto ProductionConfigRepository sobre PostgreSQL.
// La tabla guarda un registro único.
type ProductionConfigRepo struct {
	q Querier
}

// NewProductionConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionConfigRepository(q Querier) *ProductionConfigRepo {
	return &ProductionConfigRepo{q: q}
}

// Get devuelve la configuración activa, o nil si aún no existe.
func (r *ProductionConfigRepo) Get() (*entity.ProductionConfig, error) {
	query := `SELECT id, daily_production_capacity, working_days_per_week, max_inventory_days, safety_stock_days, updated_at
		FROM production_config LIMIT 1`
	var cfg entity.ProductionConfig
	err := r.q.QueryRow(context.Background(), query).Scan(
		&cfg.ID, &cfg.DailyProductionCapacity, &cfg.WorkingDaysPerWeek,
		&cfg.MaxInventoryDays, &cfg.SafetyStockDays, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production config: %w", err)
	}
	return &cfg, nil
}

// Save inserta o actualiza el registro único (upsert por ID).
func (r *ProductionConfigRepo) Save(cfg *entity.ProductionConfig) error {
	query := `
		INSERT INTO production_config (id, daily_production_capacity, working_days_per_week, max_inventory_days, safety_stock_days, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			daily_production_capacity = EXCLUDED.daily_production_capacity,
			working_days_per_week = EXCLUDED.working_days_per_week,
			max_inventory_days = EXCLUDED.max_inventory_days,
			safety_stock_days = EXCLUDED.safety_stock_days,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.DailyProductionCapacity, cfg.WorkingDaysPerWeek,
		cfg.MaxInventoryDays, cfg.SafetyStockDays, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save production config: %w", err)
	}
	return nil
}
