package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

var validRoles = map[string]bool{
	entity.RoleAdmin:           true,
	entity.RoleManager:         true,
	entity.RoleStockController: true,
	entity.RoleEngineer:        true,
}

// StaffUseCase altas, bajas y modificaciones del personal.
type StaffUseCase struct {
	staff       repository.StaffRepository
	departments repository.DepartmentRepository
	jobs        repository.JobRepository
	log         *logger.Logger
}

// NewStaffUseCase construye el caso de uso de personal.
func NewStaffUseCase(
	staff repository.StaffRepository,
	departments repository.DepartmentRepository,
	jobs repository.JobRepository,
	log *logger.Logger,
) *StaffUseCase {
	return &StaffUseCase{staff: staff, departments: departments, jobs: jobs, log: log}
}

// CreateStaffInput datos para dar de alta a un miembro del personal.
type CreateStaffInput struct {
	StaffIDNumber string
	Name          string
	JobID         int64
	DepartmentID  int64
	Role          string
	Password      string
}

// CreateStaff valida rol, cargo y departamento, hashea la contraseña inicial y persiste.
func (uc *StaffUseCase) CreateStaff(ctx context.Context, in CreateStaffInput) (*entity.Staff, error) {
	if in.StaffIDNumber == "" || in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validRoles[in.Role] {
		return nil, fmt.Errorf("rol %q desconocido: %w", in.Role, domain.ErrInvalidInput)
	}
	if existing, err := uc.staff.GetByIDNumber(in.StaffIDNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("carné %q ya registrado: %w", in.StaffIDNumber, domain.ErrDuplicate)
	}
	if dep, err := uc.departments.GetByID(in.DepartmentID); err != nil {
		return nil, err
	} else if dep == nil {
		return nil, fmt.Errorf("departamento %d: %w", in.DepartmentID, domain.ErrNotFound)
	}
	if job, err := uc.jobs.GetByID(in.JobID); err != nil {
		return nil, err
	} else if job == nil {
		return nil, fmt.Errorf("cargo %d: %w", in.JobID, domain.ErrNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	created, err := uc.staff.Create(&entity.Staff{
		StaffIDNumber: in.StaffIDNumber,
		Name:          in.Name,
		JobID:         in.JobID,
		DepartmentID:  in.DepartmentID,
		Role:          in.Role,
		HashPassword:  string(hash),
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("staff_id_number", in.StaffIDNumber).
		Str("role", in.Role).
		Msg("personal dado de alta")
	return created, nil
}

// UpdateStaffInput campos modificables de un miembro del personal.
type UpdateStaffInput struct {
	Name         string
	JobID        int64
	DepartmentID int64
	Role         string
}

// UpdateStaff modifica nombre, cargo, departamento y rol.
func (uc *StaffUseCase) UpdateStaff(ctx context.Context, id int64, in UpdateStaffInput) (*entity.Staff, error) {
	if !validRoles[in.Role] {
		return nil, fmt.Errorf("rol %q desconocido: %w", in.Role, domain.ErrInvalidInput)
	}
	staff, err := uc.staff.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, fmt.Errorf("personal %d: %w", id, domain.ErrNotFound)
	}
	staff.Name = in.Name
	staff.JobID = in.JobID
	staff.DepartmentID = in.DepartmentID
	staff.Role = in.Role
	if err := uc.staff.Update(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff da de baja a un miembro del personal.
func (uc *StaffUseCase) DeleteStaff(ctx context.Context, id int64) error {
	staff, err := uc.staff.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("personal %d: %w", id, domain.ErrNotFound)
	}
	return uc.staff.Delete(id)
}

// GetStaff devuelve un miembro del personal por id.
func (uc *StaffUseCase) GetStaff(ctx context.Context, id int64) (*entity.Staff, error) {
	staff, err := uc.staff.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, fmt.Errorf("personal %d: %w", id, domain.ErrNotFound)
	}
	return staff, nil
}

// ListStaff devuelve todo el personal.
func (uc *StaffUseCase) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	return uc.staff.List()
}
