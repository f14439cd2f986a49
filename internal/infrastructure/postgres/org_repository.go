package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)
var _ repository.JobRepository = (*JobRepo)(nil)
var _ repository.RecipientRepository = (*RecipientRepo)(nil)

// DepartmentRepo implementación de DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de departamentos.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un departamento. Nombre duplicado devuelve ErrDuplicate.
func (r *DepartmentRepo) Create(dep *entity.Department) (*entity.Department, error) {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO departments (name) VALUES ($1) RETURNING id`, dep.Name,
	).Scan(&dep.ID)
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}
	return dep, nil
}

// GetByID devuelve el departamento o nil si no existe.
func (r *DepartmentRepo) GetByID(id int64) (*entity.Department, error) {
	return r.get("id", id)
}

// GetByName busca por nombre; nil si no existe.
func (r *DepartmentRepo) GetByName(name string) (*entity.Department, error) {
	return r.get("name", name)
}

func (r *DepartmentRepo) get(column string, arg any) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM departments WHERE `+column+` = $1`, arg,
	).Scan(&d.ID, &d.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// Update guarda el nombre del departamento.
func (r *DepartmentRepo) Update(dep *entity.Department) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE departments SET name = $1 WHERE id = $2`, dep.Name, dep.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// Delete elimina el departamento.
func (r *DepartmentRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

// List devuelve los departamentos ordenados por nombre.
func (r *DepartmentRepo) List() ([]entity.Department, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// JobRepo implementación de JobRepository sobre PostgreSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de cargos.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste un cargo. Nombre duplicado devuelve ErrDuplicate.
func (r *JobRepo) Create(job *entity.Job) (*entity.Job, error) {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO jobs (name) VALUES ($1) RETURNING id`, job.Name,
	).Scan(&job.ID)
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

// GetByID devuelve el cargo o nil si no existe.
func (r *JobRepo) GetByID(id int64) (*entity.Job, error) {
	return r.get("id", id)
}

// GetByName busca por nombre; nil si no existe.
func (r *JobRepo) GetByName(name string) (*entity.Job, error) {
	return r.get("name", name)
}

func (r *JobRepo) get(column string, arg any) (*entity.Job, error) {
	var j entity.Job
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM jobs WHERE `+column+` = $1`, arg,
	).Scan(&j.ID, &j.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// Update guarda el nombre del cargo.
func (r *JobRepo) Update(job *entity.Job) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE jobs SET name = $1 WHERE id = $2`, job.Name, job.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete elimina el cargo.
func (r *JobRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// List devuelve los cargos ordenados por nombre.
func (r *JobRepo) List() ([]entity.Job, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM jobs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.Name); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// RecipientRepo implementación de RecipientRepository sobre PostgreSQL.
type RecipientRepo struct {
	q Querier
}

// NewRecipientRepository construye el adaptador de destinatarios de alertas.
func NewRecipientRepository(q Querier) *RecipientRepo {
	return &RecipientRepo{q: q}
}

// Create persiste un destinatario. Correo duplicado devuelve ErrDuplicate.
func (r *RecipientRepo) Create(rec *entity.Recipient) (*entity.Recipient, error) {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO recipients (email, created_at) VALUES ($1, $2) RETURNING id`,
		rec.Email, rec.CreatedAt,
	).Scan(&rec.ID)
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("insert recipient: %w", err)
	}
	return rec, nil
}

// GetByID devuelve el destinatario o nil si no existe.
func (r *RecipientRepo) GetByID(id int64) (*entity.Recipient, error) {
	return r.get("id", id)
}

// GetByEmail busca por correo; nil si no existe.
func (r *RecipientRepo) GetByEmail(email string) (*entity.Recipient, error) {
	return r.get("email", email)
}

func (r *RecipientRepo) get(column string, arg any) (*entity.Recipient, error) {
	var rec entity.Recipient
	err := r.q.QueryRow(context.Background(),
		`SELECT id, email, created_at FROM recipients WHERE `+column+` = $1`, arg,
	).Scan(&rec.ID, &rec.Email, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	return &rec, nil
}

// Update guarda el correo del destinatario.
func (r *RecipientRepo) Update(rec *entity.Recipient) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE recipients SET email = $1 WHERE id = $2`, rec.Email, rec.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("update recipient: %w", err)
	}
	return nil
}

// Delete elimina el destinatario.
func (r *RecipientRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	return nil
}

// List devuelve los destinatarios ordenados por correo.
func (r *RecipientRepo) List() ([]entity.Recipient, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, email, created_at FROM recipients ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	var out []entity.Recipient
	for rows.Next() {
		var rec entity.Recipient
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
