package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/application/usecase"
	"github.com/jhoicas/spra-api/internal/domain/mrp"
)

// MRPHandler maneja la generación, consulta y export de planes MRP (protegido).
type MRPHandler struct {
	uc       *usecase.MRPUseCase
	exportUC *usecase.ExportUseCase
}

// NewMRPHandler construye el handler.
func NewMRPHandler(uc *usecase.MRPUseCase, exportUC *usecase.ExportUseCase) *MRPHandler {
	return &MRPHandler{uc: uc, exportUC: exportUC}
}

// Generate godoc
// @Summary      Generar plan MRP para un pedido
// @Description  Reemplaza el plan existente del pedido. Un pedido sin demanda
// @Description  de componentes devuelve 422 con una advertencia, no un error.
// @Tags         mrp
// @Security     Bearer
// @Produce      json
// @Param        orderID  path  string  true  "ID del pedido"
// @Success      200      {object}  dto.GenerateMRPResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.WarningResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/mrp/generate/{orderID} [post]
func (h *MRPHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context(), c.Params("orderID"))
	if err != nil {
		if errors.Is(err, mrp.ErrEmptyOrder) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.WarningResponse{
				Code:    "EMPTY_ORDER",
				Warning: "el pedido no tiene demanda de componentes: revise las líneas y los BOM de sus tipos",
			})
		}
		if errors.Is(err, mrp.ErrInvalidConfig) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "INVALID_CONFIG",
				Message: "la configuración de producción es inválida",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByOrder godoc
// @Summary      Consultar plan MRP de un pedido
// @Tags         mrp
// @Security     Bearer
// @Produce      json
// @Param        orderID  path  string  true  "ID del pedido"
// @Success      200      {object}  dto.MRPPlanListResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/mrp/order/{orderID} [get]
func (h *MRPHandler) ListByOrder(c *fiber.Ctx) error {
	out, err := h.uc.ListByOrder(c.Params("orderID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar estado de una línea de plan
// @Description  scheduled/urgent -> ordered -> received. Al recibir se acredita
// @Description  la cantidad pedida al inventario del componente.
// @Tags         mrp
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        planID  path  string                      true  "ID de la línea de plan"
// @Param        body    body  dto.UpdatePlanStatusRequest true  "Nuevo estado"
// @Success      200     {object}  dto.MRPPlanEntryDTO
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/mrp/{planID}/status [put]
func (h *MRPHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePlanStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("planID"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar plan MRP como CSV
// @Description  Con excel=true el archivo sale en windows-1252 para Excel.
// @Tags         mrp
// @Security     Bearer
// @Produce      text/csv
// @Param        orderID  path   string  true   "ID del pedido"
// @Param        excel    query  bool    false  "Codificar en windows-1252"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mrp/order/{orderID}/export/csv [get]
func (h *MRPHandler) ExportCSV(c *fiber.Ctx) error {
	excel := c.QueryBool("excel", false)
	content, filename, err := h.exportUC.PlanCSV(c.Params("orderID"), excel)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}

// ExportPDF godoc
// @Summary      Exportar plan MRP como PDF
// @Tags         mrp
// @Security     Bearer
// @Produce      application/pdf
// @Param        orderID  path  string  true  "ID del pedido"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mrp/order/{orderID}/export/pdf [get]
func (h *MRPHandler) ExportPDF(c *fiber.Ctx) error {
	content, filename, err := h.exportUC.PlanPDF(c.Params("orderID"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}
