package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// HornTypeUseCase casos de uso para tipos de bocina y su BOM.
type HornTypeUseCase struct {
	repo          repository.HornTypeRepository
	componentRepo repository.ComponentRepository
}

// NewHornTypeUseCase construye el caso de uso.
func NewHornTypeUseCase(repo repository.HornTypeRepository, componentRepo repository.ComponentRepository) *HornTypeUseCase {
	return &HornTypeUseCase{repo: repo, componentRepo: componentRepo}
}

// Create crea un tipo de bocina. El código debe ser único.
func (uc *HornTypeUseCase) Create(in dto.CreateHornTypeRequest) (*dto.HornTypeResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	hornType := &entity.HornType{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(hornType); err != nil {
		return nil, err
	}
	return uc.toHornTypeResponse(hornType, false)
}

// GetByID obtiene un tipo de bocina con su BOM resuelto.
func (uc *HornTypeUseCase) GetByID(id string) (*dto.HornTypeResponse, error) {
	hornType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hornType == nil {
		return nil, nil
	}
	return uc.toHornTypeResponse(hornType, true)
}

// Update actualiza nombre/descripción del tipo de bocina.
func (uc *HornTypeUseCase) Update(id string, in dto.UpdateHornTypeRequest) (*dto.HornTypeResponse, error) {
	hornType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hornType == nil {
		return nil, nil
	}
	if in.Name != nil {
		hornType.Name = *in.Name
	}
	if in.Description != nil {
		hornType.Description = *in.Description
	}
	hornType.UpdatedAt = time.Now()
	if err := uc.repo.Update(hornType); err != nil {
		return nil, err
	}
	return uc.toHornTypeResponse(hornType, true)
}

// List lista tipos de bocina con paginación (sin BOM, para no multiplicar queries).
func (uc *HornTypeUseCase) List(page dto.PageRequest) (*dto.HornTypeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HornTypeResponse, 0, len(list))
	for _, hornType := range list {
		resp, err := uc.toHornTypeResponse(hornType, false)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.HornTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un tipo de bocina y sus entradas de BOM (cascada en DB).
func (uc *HornTypeUseCase) Delete(id string) error {
	hornType, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if hornType == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AddBOMEntry agrega un componente al BOM. Rechaza duplicados y cantidades <= 0.
func (uc *HornTypeUseCase) AddBOMEntry(hornTypeID string, in dto.AddBOMEntryRequest) (*dto.BOMEntryResponse, error) {
	if !in.QuantityPerHorn.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	hornType, err := uc.repo.GetByID(hornTypeID)
	if err != nil {
		return nil, err
	}
	if hornType == nil {
		return nil, domain.ErrNotFound
	}
	component, err := uc.componentRepo.GetByID(in.ComponentID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetBOMEntry(hornTypeID, in.ComponentID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	entry := &entity.BOMEntry{
		ID:              uuid.New().String(),
		HornTypeID:      hornTypeID,
		ComponentID:     in.ComponentID,
		QuantityPerHorn: in.QuantityPerHorn,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.AddBOMEntry(entry); err != nil {
		return nil, err
	}
	return &dto.BOMEntryResponse{
		ID:              entry.ID,
		HornTypeID:      entry.HornTypeID,
		ComponentID:     entry.ComponentID,
		ComponentCode:   component.Code,
		ComponentName:   component.Name,
		ComponentUnit:   component.Unit,
		QuantityPerHorn: entry.QuantityPerHorn,
	}, nil
}

// UpdateBOMEntry cambia la cantidad por bocina de una entrada existente.
func (uc *HornTypeUseCase) UpdateBOMEntry(hornTypeID, componentID string, in dto.UpdateBOMEntryRequest) (*dto.BOMEntryResponse, error) {
	if !in.QuantityPerHorn.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.repo.GetBOMEntry(hornTypeID, componentID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	entry.QuantityPerHorn = in.QuantityPerHorn
	if err := uc.repo.UpdateBOMEntry(entry); err != nil {
		return nil, err
	}
	resp := &dto.BOMEntryResponse{
		ID:              entry.ID,
		HornTypeID:      entry.HornTypeID,
		ComponentID:     entry.ComponentID,
		QuantityPerHorn: entry.QuantityPerHorn,
	}
	if component, _ := uc.componentRepo.GetByID(componentID); component != nil {
		resp.ComponentCode = component.Code
		resp.ComponentName = component.Name
		resp.ComponentUnit = component.Unit
	}
	return resp, nil
}

// RemoveBOMEntry quita un componente del BOM.
func (uc *HornTypeUseCase) RemoveBOMEntry(hornTypeID, componentID string) error {
	entry, err := uc.repo.GetBOMEntry(hornTypeID, componentID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.repo.RemoveBOMEntry(hornTypeID, componentID)
}

// toHornTypeResponse arma la respuesta; con BOM resuelve los componentes para la UI.
func (uc *HornTypeUseCase) toHornTypeResponse(h *entity.HornType, withBOM bool) (*dto.HornTypeResponse, error) {
	resp := &dto.HornTypeResponse{
		ID:          h.ID,
		Code:        h.Code,
		Name:        h.Name,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
	if !withBOM {
		return resp, nil
	}
	entries, err := uc.repo.ListBOM(h.ID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return resp, nil
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ComponentID)
	}
	components, err := uc.componentRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Component, len(components))
	for _, component := range components {
		byID[component.ID] = component
	}
	for _, entry := range entries {
		row := dto.BOMEntryResponse{
			ID:              entry.ID,
			HornTypeID:      entry.HornTypeID,
			ComponentID:     entry.ComponentID,
			QuantityPerHorn: entry.QuantityPerHorn,
		}
		if component, ok := byID[entry.ComponentID]; ok {
			row.ComponentCode = component.Code
			row.ComponentName = component.Name
			row.ComponentUnit = component.Unit
		}
		resp.BOM = append(resp.BOM, row)
	}
	return resp, nil
}
