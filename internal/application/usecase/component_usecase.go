package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

const defaultLeadTimeDays = 7

// ComponentUseCase casos de uso CRUD para componentes. El inventario se
// modifica vía ajustes y recepción MRP, no por el Update genérico.
type ComponentUseCase struct {
	repo repository.ComponentRepository
}

// NewComponentUseCase construye el caso de uso.
func NewComponentUseCase(repo repository.ComponentRepository) *ComponentUseCase {
	return &ComponentUseCase{repo: repo}
}

// Create crea un componente nuevo. El código debe ser único.
func (uc *ComponentUseCase) Create(in dto.CreateComponentRequest) (*dto.ComponentResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Unit == "" {
		in.Unit = "pieces"
	}
	leadTime := defaultLeadTimeDays
	if in.LeadTimeDays != nil {
		if *in.LeadTimeDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		leadTime = *in.LeadTimeDays
	}
	now := time.Now()
	component := &entity.Component{
		ID:                   uuid.New().String(),
		Code:                 in.Code,
		Name:                 in.Name,
		Description:          in.Description,
		Unit:                 in.Unit,
		CurrentInventory:     in.CurrentInventory,
		MinStockLevel:        in.MinStockLevel,
		MaxStockLevel:        in.MaxStockLevel,
		LeadTimeDays:         leadTime,
		SupplierName:         in.SupplierName,
		SupplierContact:      in.SupplierContact,
		UnitCost:             in.UnitCost,
		MinimumOrderQuantity: in.MinimumOrderQuantity,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// GetByID obtiene un componente por ID.
func (uc *ComponentUseCase) GetByID(id string) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	return toComponentResponse(component), nil
}

// Update actualiza los campos presentes del componente.
func (uc *ComponentUseCase) Update(id string, in dto.UpdateComponentRequest) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	if in.Name != nil {
		component.Name = *in.Name
	}
	if in.Description != nil {
		component.Description = *in.Description
	}
	if in.Unit != nil {
		component.Unit = *in.Unit
	}
	if in.CurrentInventory != nil {
		component.CurrentInventory = *in.CurrentInventory
	}
	if in.MinStockLevel != nil {
		component.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		component.MaxStockLevel = *in.MaxStockLevel
	}
	if in.LeadTimeDays != nil {
		if *in.LeadTimeDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		component.LeadTimeDays = *in.LeadTimeDays
	}
	if in.SupplierName != nil {
		component.SupplierName = *in.SupplierName
	}
	if in.SupplierContact != nil {
		component.SupplierContact = *in.SupplierContact
	}
	if in.UnitCost != nil {
		component.UnitCost = *in.UnitCost
	}
	if in.MinimumOrderQuantity != nil {
		component.MinimumOrderQuantity = *in.MinimumOrderQuantity
	}
	component.UpdatedAt = time.Now()
	if err := uc.repo.Update(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// List lista componentes con paginación.
func (uc *ComponentUseCase) List(page dto.PageRequest) (*dto.ComponentListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComponentResponse, 0, len(list))
	for _, component := range list {
		items = append(items, *toComponentResponse(component))
	}
	return &dto.ComponentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un componente. Falla con ErrConflict si un BOM lo referencia
// (restricción de FK en la DB).
func (uc *ComponentUseCase) Delete(id string) error {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toComponentResponse(c *entity.Component) *dto.ComponentResponse {
	return &dto.ComponentResponse{
		ID:                   c.ID,
		Code:                 c.Code,
		Name:                 c.Name,
		Description:          c.Description,
		Unit:                 c.Unit,
		CurrentInventory:     c.CurrentInventory,
		MinStockLevel:        c.MinStockLevel,
		MaxStockLevel:        c.MaxStockLevel,
		LeadTimeDays:         c.LeadTimeDays,
		SupplierName:         c.SupplierName,
		SupplierContact:      c.SupplierContact,
		UnitCost:             c.UnitCost,
		MinimumOrderQuantity: c.MinimumOrderQuantity,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
