package repository

import "github.com/jcastellr/almacen-api/internal/domain/entity"

// StaffRepository acceso al personal.
type StaffRepository interface {
	Create(staff *entity.Staff) (*entity.Staff, error)
	GetByID(id int64) (*entity.Staff, error)
	GetByIDNumber(staffIDNumber string) (*entity.Staff, error)
	Update(staff *entity.Staff) error
	UpdatePassword(id int64, hashPassword string) error
	Delete(id int64) error
	List() ([]entity.Staff, error)
}

// DepartmentRepository acceso a los departamentos.
type DepartmentRepository interface {
	Create(dep *entity.Department) (*entity.Department, error)
	GetByID(id int64) (*entity.Department, error)
	GetByName(name string) (*entity.Department, error)
	Update(dep *entity.Department) error
	Delete(id int64) error
	List() ([]entity.Department, error)
}

// JobRepository acceso a los cargos.
type JobRepository interface {
	Create(job *entity.Job) (*entity.Job, error)
	GetByID(id int64) (*entity.Job, error)
	GetByName(name string) (*entity.Job, error)
	Update(job *entity.Job) error
	Delete(id int64) error
	List() ([]entity.Job, error)
}

// RecipientRepository acceso a los destinatarios de alertas de re-orden.
type RecipientRepository interface {
	Create(r *entity.Recipient) (*entity.Recipient, error)
	GetByID(id int64) (*entity.Recipient, error)
	GetByEmail(email string) (*entity.Recipient, error)
	Update(r *entity.Recipient) error
	Delete(id int64) error
	List() ([]entity.Recipient, error)
}
