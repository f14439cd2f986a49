package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/dto"
	"github.com/jcastellr/almacen-api/internal/application/stock"
)

// AdjustmentHandler maneja las peticiones HTTP de ajustes manuales (protegido).
type AdjustmentHandler struct {
	uc *stock.AdjustmentUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *stock.AdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ajuste manual
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "barcode, quantity, department_id"
// @Success      201   {array}   dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entries, err := h.uc.Create(c.Context(), stock.CreateAdjustmentInput{
		Barcode:      in.Barcode,
		Quantity:     in.Quantity,
		DepartmentID: in.DepartmentID,
		ActorID:      GetStaffID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AdjustmentResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.FromAdjustment(&entries[i]))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ajustes
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AdjustmentResponse
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AdjustmentResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.FromAdjustment(&entries[i]))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir ajuste
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID del ajuste"
// @Param        body  body  dto.UpdateAdjustmentRequest  true  "quantity, department_id"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [put]
func (h *AdjustmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	adj, err := h.uc.Update(c.Context(), id, in.Quantity, in.DepartmentID, GetStaffID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromAdjustment(adj))
}

// Delete godoc
// @Summary      Borrar ajuste
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del ajuste"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [delete]
func (h *AdjustmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ajuste borrado"})
}
