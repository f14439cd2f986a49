package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

// OrgUseCase catálogos de la organización: departamentos, cargos y
// destinatarios de las alertas de re-orden.
type OrgUseCase struct {
	departments repository.DepartmentRepository
	jobs        repository.JobRepository
	recipients  repository.RecipientRepository
}

// NewOrgUseCase construye el caso de uso de catálogos.
func NewOrgUseCase(
	departments repository.DepartmentRepository,
	jobs repository.JobRepository,
	recipients repository.RecipientRepository,
) *OrgUseCase {
	return &OrgUseCase{departments: departments, jobs: jobs, recipients: recipients}
}

// CreateDepartment registra un departamento con nombre único.
func (uc *OrgUseCase) CreateDepartment(ctx context.Context, name string) (*entity.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.departments.GetByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("departamento %q ya existe: %w", name, domain.ErrDuplicate)
	}
	return uc.departments.Create(&entity.Department{Name: name})
}

// UpdateDepartment renombra un departamento.
func (uc *OrgUseCase) UpdateDepartment(ctx context.Context, id int64, name string) (*entity.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	dep, err := uc.departments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, fmt.Errorf("departamento %d: %w", id, domain.ErrNotFound)
	}
	dep.Name = name
	if err := uc.departments.Update(dep); err != nil {
		return nil, err
	}
	return dep, nil
}

// DeleteDepartment elimina un departamento.
func (uc *OrgUseCase) DeleteDepartment(ctx context.Context, id int64) error {
	dep, err := uc.departments.GetByID(id)
	if err != nil {
		return err
	}
	if dep == nil {
		return fmt.Errorf("departamento %d: %w", id, domain.ErrNotFound)
	}
	return uc.departments.Delete(id)
}

// ListDepartments devuelve todos los departamentos.
func (uc *OrgUseCase) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	return uc.departments.List()
}

// CreateJob registra un cargo con nombre único.
func (uc *OrgUseCase) CreateJob(ctx context.Context, name string) (*entity.Job, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.jobs.GetByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("cargo %q ya existe: %w", name, domain.ErrDuplicate)
	}
	return uc.jobs.Create(&entity.Job{Name: name})
}

// DeleteJob elimina un cargo.
func (uc *OrgUseCase) DeleteJob(ctx context.Context, id int64) error {
	job, err := uc.jobs.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("cargo %d: %w", id, domain.ErrNotFound)
	}
	return uc.jobs.Delete(id)
}

// ListJobs devuelve todos los cargos.
func (uc *OrgUseCase) ListJobs(ctx context.Context) ([]entity.Job, error) {
	return uc.jobs.List()
}

// AddRecipient suscribe un correo a las alertas de re-orden.
func (uc *OrgUseCase) AddRecipient(ctx context.Context, email string) (*entity.Recipient, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("correo %q: %w", email, domain.ErrInvalidInput)
	}
	if existing, err := uc.recipients.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("correo %q ya suscrito: %w", email, domain.ErrDuplicate)
	}
	return uc.recipients.Create(&entity.Recipient{Email: email, CreatedAt: time.Now()})
}

// RemoveRecipient quita un correo de las alertas.
func (uc *OrgUseCase) RemoveRecipient(ctx context.Context, id int64) error {
	rec, err := uc.recipients.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("destinatario %d: %w", id, domain.ErrNotFound)
	}
	return uc.recipients.Delete(id)
}

// ListRecipients devuelve los correos suscritos.
func (uc *OrgUseCase) ListRecipients(ctx context.Context) ([]entity.Recipient, error) {
	return uc.recipients.List()
}
