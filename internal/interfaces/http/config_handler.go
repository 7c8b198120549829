package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/application/usecase"
)

// ConfigHandler maneja la configuración de producción (protegido).
type ConfigHandler struct {
	uc *usecase.ProductionConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ProductionConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración de producción
// @Tags         production-config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductionConfigResponse
// @Router       /api/production-config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración de producción
// @Tags         production-config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProductionConfigRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductionConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production-config [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
