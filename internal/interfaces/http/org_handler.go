package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/auth"
	"github.com/jcastellr/almacen-api/internal/application/dto"
)

// OrgHandler maneja departamentos, cargos y destinatarios de alertas (solo admin).
type OrgHandler struct {
	uc *auth.OrgUseCase
}

// NewOrgHandler construye el handler.
func NewOrgHandler(uc *auth.OrgUseCase) *OrgHandler {
	return &OrgHandler{uc: uc}
}

// ── Departamentos ─────────────────────────────────────────────────────────────

// CreateDepartment godoc
// @Summary      Crear departamento
// @Tags         org
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      201   {object}  dto.DepartmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/departments [post]
func (h *OrgHandler) CreateDepartment(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dep, err := h.uc.CreateDepartment(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DepartmentResponse{ID: dep.ID, Name: dep.Name})
}

// UpdateDepartment godoc
// @Summary      Renombrar departamento
// @Tags         org
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del departamento"
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      200   {object}  dto.DepartmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/departments/{id} [put]
func (h *OrgHandler) UpdateDepartment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dep, err := h.uc.UpdateDepartment(c.Context(), id, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DepartmentResponse{ID: dep.ID, Name: dep.Name})
}

// DeleteDepartment godoc
// @Summary      Eliminar departamento
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del departamento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/departments/{id} [delete]
func (h *OrgHandler) DeleteDepartment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteDepartment(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "departamento eliminado"})
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentResponse
// @Router       /api/departments [get]
func (h *OrgHandler) ListDepartments(c *fiber.Ctx) error {
	deps, err := h.uc.ListDepartments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DepartmentResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return c.JSON(out)
}

// ── Cargos ────────────────────────────────────────────────────────────────────

// CreateJob godoc
// @Summary      Crear cargo
// @Tags         org
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      201   {object}  dto.JobResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *OrgHandler) CreateJob(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	job, err := h.uc.CreateJob(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.JobResponse{ID: job.ID, Name: job.Name})
}

// DeleteJob godoc
// @Summary      Eliminar cargo
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del cargo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [delete]
func (h *OrgHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteJob(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cargo eliminado"})
}

// ListJobs godoc
// @Summary      Listar cargos
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.JobResponse
// @Router       /api/jobs [get]
func (h *OrgHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.JobResponse{ID: j.ID, Name: j.Name})
	}
	return c.JSON(out)
}

// ── Destinatarios de alertas ──────────────────────────────────────────────────

// AddRecipient godoc
// @Summary      Suscribir correo a las alertas de re-orden
// @Tags         org
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecipientRequest  true  "email"
// @Success      201   {object}  dto.RecipientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/recipients [post]
func (h *OrgHandler) AddRecipient(c *fiber.Ctx) error {
	var in dto.RecipientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.AddRecipient(c.Context(), in.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecipientResponse{ID: rec.ID, Email: rec.Email, CreatedAt: rec.CreatedAt})
}

// RemoveRecipient godoc
// @Summary      Retirar correo de las alertas
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del destinatario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipients/{id} [delete]
func (h *OrgHandler) RemoveRecipient(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.RemoveRecipient(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "destinatario retirado"})
}

// ListRecipients godoc
// @Summary      Listar destinatarios de alertas
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecipientResponse
// @Router       /api/recipients [get]
func (h *OrgHandler) ListRecipients(c *fiber.Ctx) error {
	recs, err := h.uc.ListRecipients(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RecipientResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecipientResponse{ID: r.ID, Email: r.Email, CreatedAt: r.CreatedAt})
	}
	return c.JSON(out)
}
