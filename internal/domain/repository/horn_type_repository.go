package repository

import "github.com/jhoicas/spra-api/internal/domain/entity"

// HornTypeRepository puerto de persistencia para HornType y su BOM.
// Las entradas de BOM se devuelven siempre en orden de inserción: el
// planificador depende de ese orden para producir salida determinista.
type HornTypeRepository interface {
	Create(hornType *entity.HornType) error
	GetByID(id string) (*entity.HornType, error)
	GetByCode(code string) (*entity.HornType, error)
	Update(hornType *entity.HornType) error
	List(limit, offset int) ([]*entity.HornType, error)
	Delete(id string) error

	ListBOM(hornTypeID string) ([]*entity.BOMEntry, error)
	GetBOMEntry(hornTypeID, componentID string) (*entity.BOMEntry, error)
	AddBOMEntry(entry *entity.BOMEntry) error
	UpdateBOMEntry(entry *entity.BOMEntry) error
	RemoveBOMEntry(hornTypeID, componentID string) error
}
