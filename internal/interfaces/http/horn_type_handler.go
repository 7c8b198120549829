package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/application/usecase"
)

// HornTypeHandler maneja las peticiones HTTP para HornType y su BOM (protegido).
type HornTypeHandler struct {
	uc *usecase.HornTypeUseCase
}

// NewHornTypeHandler construye el handler.
func NewHornTypeHandler(uc *usecase.HornTypeUseCase) *HornTypeHandler {
	return &HornTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de bocina
// @Tags         horn-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHornTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.HornTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/horn-types [post]
func (h *HornTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHornTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de bocina con su BOM
// @Tags         horn-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.HornTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/horn-types/{id} [get]
func (h *HornTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de bocina no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de bocina
// @Tags         horn-types
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.HornTypeListResponse
// @Router       /api/horn-types [get]
func (h *HornTypeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de bocina
// @Tags         horn-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del tipo"
// @Param        body  body  dto.UpdateHornTypeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.HornTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/horn-types/{id} [put]
func (h *HornTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHornTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de bocina no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de bocina
// @Tags         horn-types
// @Security     Bearer
// @Param        id  path  string  true  "ID del tipo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/horn-types/{id} [delete]
func (h *HornTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddBOMEntry godoc
// @Summary      Agregar componente al BOM
// @Tags         horn-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del tipo"
// @Param        body  body  dto.AddBOMEntryRequest true  "Componente y cantidad"
// @Success      201   {object}  dto.BOMEntryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/horn-types/{id}/components [post]
func (h *HornTypeHandler) AddBOMEntry(c *fiber.Ctx) error {
	var in dto.AddBOMEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ComponentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "component_id es requerido"})
	}
	out, err := h.uc.AddBOMEntry(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateBOMEntry godoc
// @Summary      Actualizar cantidad de un componente del BOM
// @Tags         horn-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id           path  string                    true  "ID del tipo"
// @Param        componentID  path  string                    true  "ID del componente"
// @Param        body         body  dto.UpdateBOMEntryRequest true  "Nueva cantidad"
// @Success      200          {object}  dto.BOMEntryResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/horn-types/{id}/components/{componentID} [put]
func (h *HornTypeHandler) UpdateBOMEntry(c *fiber.Ctx) error {
	var in dto.UpdateBOMEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBOMEntry(c.Params("id"), c.Params("componentID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveBOMEntry godoc
// @Summary      Quitar componente del BOM
// @Tags         horn-types
// @Security     Bearer
// @Param        id           path  string  true  "ID del tipo"
// @Param        componentID  path  string  true  "ID del componente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/horn-types/{id}/components/{componentID} [delete]
func (h *HornTypeHandler) RemoveBOMEntry(c *fiber.Ctx) error {
	if err := h.uc.RemoveBOMEntry(c.Params("id"), c.Params("componentID")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
