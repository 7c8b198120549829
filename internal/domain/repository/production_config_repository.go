package repository

import "github.com/jhoicas/spra-api/internal/domain/entity"

// ProductionConfigRepository puerto para el registro único de configuración de producción.
type ProductionConfigRepository interface {
	// Get devuelve la configuración activa, o nil si aún no existe.
	Get() (*entity.ProductionConfig, error)
	// Save inserta o actualiza el registro único.
	Save(cfg *entity.ProductionConfig) error
}
