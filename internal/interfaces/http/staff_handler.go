package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/auth"
	"github.com/jcastellr/almacen-api/internal/application/dto"
)

// StaffHandler maneja las peticiones HTTP de administración de personal (solo admin).
type StaffHandler struct {
	uc *auth.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *auth.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar miembro del personal
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStaffRequest  true  "staff_id_number, name, job_id, department_id, role, password"
// @Success      201   {object}  dto.StaffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CreateStaff(c.Context(), auth.CreateStaffInput{
		StaffIDNumber: in.StaffIDNumber,
		Name:          in.Name,
		JobID:         in.JobID,
		DepartmentID:  in.DepartmentID,
		Role:          in.Role,
		Password:      in.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromStaff(s))
}

// List godoc
// @Summary      Listar personal
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StaffResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	staff, err := h.uc.ListStaff(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		out = append(out, dto.FromStaff(&staff[i]))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Consultar miembro del personal
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del miembro"
// @Success      200  {object}  dto.StaffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [get]
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	s, err := h.uc.GetStaff(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromStaff(s))
}

// Update godoc
// @Summary      Modificar miembro del personal
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del miembro"
// @Param        body  body  dto.UpdateStaffRequest  true  "name, job_id, department_id, role"
// @Success      200   {object}  dto.StaffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.UpdateStaff(c.Context(), id, auth.UpdateStaffInput{
		Name:         in.Name,
		JobID:        in.JobID,
		DepartmentID: in.DepartmentID,
		Role:         in.Role,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromStaff(s))
}

// Delete godoc
// @Summary      Eliminar miembro del personal
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del miembro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteStaff(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "miembro eliminado"})
}
