package dto

import (
	"time"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	StaffIDNumber string `json:"staff_id_number"`
	Password      string `json:"password"`
}

// LoginResponse token emitido más los datos del personal autenticado.
type LoginResponse struct {
	Token      string        `json:"token"`
	ExpMinutes int           `json:"expires_in_minutes"`
	Staff      StaffResponse `json:"staff"`
}

// ChangePasswordRequest body para POST /api/auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateStaffRequest body para POST /api/staff.
type CreateStaffRequest struct {
	StaffIDNumber string `json:"staff_id_number"`
	Name          string `json:"name"`
	JobID         int64  `json:"job_id"`
	DepartmentID  int64  `json:"department_id"`
	Role          string `json:"role"`
	Password      string `json:"password"`
}

// UpdateStaffRequest body para PUT /api/staff/:id.
type UpdateStaffRequest struct {
	Name         string `json:"name"`
	JobID        int64  `json:"job_id"`
	DepartmentID int64  `json:"department_id"`
	Role         string `json:"role"`
}

// StaffResponse representación de un miembro del personal. Nunca expone el hash.
type StaffResponse struct {
	ID            int64     `json:"id"`
	StaffIDNumber string    `json:"staff_id_number"`
	Name          string    `json:"name"`
	JobID         int64     `json:"job_id"`
	DepartmentID  int64     `json:"department_id"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromStaff convierte la entidad a su representación HTTP.
func FromStaff(s *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:            s.ID,
		StaffIDNumber: s.StaffIDNumber,
		Name:          s.Name,
		JobID:         s.JobID,
		DepartmentID:  s.DepartmentID,
		Role:          s.Role,
		CreatedAt:     s.CreatedAt,
	}
}

// NameRequest body para crear o renombrar departamentos y cargos.
type NameRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse representación de un departamento.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JobResponse representación de un cargo.
type JobResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipientRequest body para POST /api/recipients.
type RecipientRequest struct {
	Email string `json:"email"`
}

// RecipientResponse representación de un destinatario de alertas.
type RecipientResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
