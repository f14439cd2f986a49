package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/dto"
	"github.com/jcastellr/almacen-api/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP de órdenes de material (protegido).
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de material
// @Description  Valida disponibilidad, asigna contra los lotes más viejos primero
//
//	y adjunta el costo total; si el remanente queda en reorden se
//	encola la alerta por correo.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "barcode, quantity, job_number, part_name"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	o, err := h.uc.CreateOrder(c.Context(), order.CreateOrderInput{
		Barcode:   in.Barcode,
		Quantity:  in.Quantity,
		JobNumber: in.JobNumber,
		PartName:  in.PartName,
		StaffID:   GetStaffID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(o))
}

// Get godoc
// @Summary      Consultar orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	o, err := h.uc.GetOrder(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromOrder(o))
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.ListOrders(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.FromOrder(&orders[i]))
	}
	return c.JSON(out)
}

// CheckAvailability godoc
// @Summary      Consultar disponibilidad de un artículo
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/availability/{barcode} [get]
func (h *OrderHandler) CheckAvailability(c *fiber.Ctx) error {
	av, err := h.uc.CheckAvailability(c.Context(), c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromAvailability(av))
}
