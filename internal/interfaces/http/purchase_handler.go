package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/dto"
	"github.com/jcastellr/almacen-api/internal/application/purchase"
)

// PurchaseOrderHandler maneja las peticiones HTTP de órdenes de compra (protegido).
type PurchaseOrderHandler struct {
	uc *purchase.UseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *purchase.UseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "supplier_name, items"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	staffID := GetStaffID(c)
	input := purchase.CreateInput{SupplierName: in.SupplierName, CreatedBy: staffID}
	for _, it := range in.Items {
		input.Items = append(input.Items, purchase.ItemInput{
			ItemID:      it.ItemID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			RequestedBy: staffID,
		})
	}
	po, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPurchaseOrder(po))
}

// Get godoc
// @Summary      Consultar orden de compra con sus líneas
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden de compra"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	po, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromPurchaseOrder(po))
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PurchaseOrderResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	pos, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(pos))
	for i := range pos {
		out = append(out, dto.FromPurchaseOrder(&pos[i]))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                             true  "ID de la orden de compra"
// @Param        body  body  dto.UpdatePurchaseOrderRequest  true  "supplier_name"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [put]
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	po, err := h.uc.Update(c.Context(), id, in.SupplierName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromPurchaseOrder(po))
}

// Delete godoc
// @Summary      Eliminar orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden de compra"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden de compra eliminada"})
}

// UpdateState godoc
// @Summary      Cambiar estado de la orden de compra
// @Description  Pasar a validated recibe los lotes de entrada; cancelar una orden
//
//	validada marca sus lotes como cancelados.
//
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la orden de compra"
// @Param        body  body  dto.UpdatePOStateRequest true  "state: draft|submitted|validated|canceled"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/state [put]
func (h *PurchaseOrderHandler) UpdateState(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePOStateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	po, err := h.uc.UpdateState(c.Context(), id, in.State)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromPurchaseOrder(po))
}

// AddItem godoc
// @Summary      Agregar línea a la orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la orden de compra"
// @Param        body  body  dto.PurchaseOrderItemRequest  true  "item_id, quantity, price"
// @Success      201   {object}  dto.PurchaseOrderItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/items [post]
func (h *PurchaseOrderHandler) AddItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PurchaseOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.AddItem(c.Context(), id, purchase.ItemInput{
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		RequestedBy: GetStaffID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PurchaseOrderItemResponse{
		ID:         line.ID,
		ItemID:     line.ItemID,
		Quantity:   line.Quantity,
		Price:      line.Price,
		StockLotID: line.StockLotID,
	})
}

// UpdateItem godoc
// @Summary      Corregir línea de la orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  int                           true  "ID de la orden de compra"
// @Param        itemId  path  int                           true  "ID de la línea"
// @Param        body    body  dto.PurchaseOrderItemRequest  true  "item_id, quantity, price"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/items/{itemId} [put]
func (h *PurchaseOrderHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	lineID, err := parseID(c, "itemId")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PurchaseOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err = h.uc.UpdateItem(c.Context(), id, lineID, purchase.ItemInput{
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		RequestedBy: GetStaffID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea actualizada"})
}

// DeleteItem godoc
// @Summary      Eliminar línea de la orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id      path  int  true  "ID de la orden de compra"
// @Param        itemId  path  int  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/items/{itemId} [delete]
func (h *PurchaseOrderHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	lineID, err := parseID(c, "itemId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteItem(c.Context(), id, lineID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
