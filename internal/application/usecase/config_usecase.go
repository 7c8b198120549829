package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

// Valores por defecto de la configuración de producción.
const (
	defaultDailyCapacity      = 4000
	defaultWorkingDaysPerWeek = 6
	defaultMaxInventoryDays   = 30
	defaultSafetyStockDays    = 3
)

// ProductionConfigUseCase lectura y actualización del registro único de
// configuración de producción. Si no existe, Get lo crea con los defaults.
type ProductionConfigUseCase struct {
	repo repository.ProductionConfigRepository
}

// NewProductionConfigUseCase construye el caso de uso.
func NewProductionConfigUseCase(repo repository.ProductionConfigRepository) *ProductionConfigUseCase {
	return &ProductionConfigUseCase{repo: repo}
}

// Get devuelve la configuración activa, creándola con defaults en el primer acceso.
func (uc *ProductionConfigUseCase) Get() (*dto.ProductionConfigResponse, error) {
	cfg, err := uc.getOrCreate()
	if err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

// Update actualiza los campos presentes y persiste. Valida los rangos:
// capacidad > 0, días laborables en [1,7], días de inventario y colchón >= 0.
func (uc *ProductionConfigUseCase) Update(in dto.UpdateProductionConfigRequest) (*dto.ProductionConfigResponse, error) {
	cfg, err := uc.getOrCreate()
	if err != nil {
		return nil, err
	}
	if in.DailyProductionCapacity != nil {
		if *in.DailyProductionCapacity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		cfg.DailyProductionCapacity = *in.DailyProductionCapacity
	}
	if in.WorkingDaysPerWeek != nil {
		if *in.WorkingDaysPerWeek < 1 || *in.WorkingDaysPerWeek > 7 {
			return nil, domain.ErrInvalidInput
		}
		cfg.WorkingDaysPerWeek = *in.WorkingDaysPerWeek
	}
	if in.MaxInventoryDays != nil {
		if *in.MaxInventoryDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		cfg.MaxInventoryDays = *in.MaxInventoryDays
	}
	if in.SafetyStockDays != nil {
		if *in.SafetyStockDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		cfg.SafetyStockDays = *in.SafetyStockDays
	}
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Save(cfg); err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

// Current devuelve la entidad para uso interno (planificador MRP).
func (uc *ProductionConfigUseCase) Current() (*entity.ProductionConfig, error) {
	return uc.getOrCreate()
}

func (uc *ProductionConfigUseCase) getOrCreate() (*entity.ProductionConfig, error) {
	cfg, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}
	cfg = &entity.ProductionConfig{
		ID:                      uuid.New().String(),
		DailyProductionCapacity: defaultDailyCapacity,
		WorkingDaysPerWeek:      defaultWorkingDaysPerWeek,
		MaxInventoryDays:        defaultMaxInventoryDays,
		SafetyStockDays:         defaultSafetyStockDays,
		UpdatedAt:               time.Now(),
	}
	if err := uc.repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func toConfigResponse(cfg *entity.ProductionConfig) *dto.ProductionConfigResponse {
	return &dto.ProductionConfigResponse{
		ID:                      cfg.ID,
		DailyProductionCapacity: cfg.DailyProductionCapacity,
		WorkingDaysPerWeek:      cfg.WorkingDaysPerWeek,
		MaxInventoryDays:        cfg.MaxInventoryDays,
		SafetyStockDays:         cfg.SafetyStockDays,
		UpdatedAt:               cfg.UpdatedAt,
	}
}
