package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/dto"
	"github.com/jcastellr/almacen-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de artículos y lotes de entrada (protegido).
type StockHandler struct {
	intake *stock.IntakeUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(intake *stock.IntakeUseCase) *StockHandler {
	return &StockHandler{intake: intake}
}

// CreateItem godoc
// @Summary      Registrar artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "barcode, specification, location, category"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *StockHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.intake.CreateItem(c.Context(), stock.CreateItemInput{
		Barcode:       in.Barcode,
		Specification: in.Specification,
		Location:      in.Location,
		Category:      in.Category,
		ERMCode:       in.ERMCode,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromItem(item))
}

// ListItems godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *StockHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.intake.ListItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.FromItem(&items[i]))
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Consultar artículo por código de barras
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{barcode} [get]
func (h *StockHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.intake.GetItem(c.Context(), c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromItem(item))
}

// AddStock godoc
// @Summary      Registrar lote de entrada
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "barcode, quantity, cost"
// @Success      201   {object}  dto.StockLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.intake.AddStock(c.Context(), stock.AddStockInput{
		Barcode:  in.Barcode,
		Quantity: in.Quantity,
		Cost:     in.Cost,
		ActorID:  GetStaffID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromStockLot(lot))
}

// UpdateStock godoc
// @Summary      Corregir lote de entrada no usado
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del lote"
// @Param        body  body  dto.UpdateStockRequest true  "quantity, cost"
// @Success      200   {object}  dto.StockLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.intake.UpdateStock(c.Context(), id, in.Quantity, in.Cost, GetStaffID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromStockLot(lot))
}

// RemoveStock godoc
// @Summary      Eliminar lote de entrada no usado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) RemoveStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.intake.RemoveStock(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lote eliminado"})
}
