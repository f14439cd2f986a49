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

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de personal.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, staff_id_number, name, job_id, department_id, role, hash_password, created_at`

// Create persiste un miembro del personal. Carné duplicado devuelve ErrDuplicate.
func (r *StaffRepo) Create(staff *entity.Staff) (*entity.Staff, error) {
	query := `
		INSERT INTO staff (staff_id_number, name, job_id, department_id, role, hash_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		staff.StaffIDNumber, staff.Name, staff.JobID, staff.DepartmentID,
		staff.Role, staff.HashPassword, staff.CreatedAt,
	).Scan(&staff.ID)
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("insert staff: %w", err)
	}
	return staff, nil
}

// GetByID devuelve el miembro o nil si no existe.
func (r *StaffRepo) GetByID(id int64) (*entity.Staff, error) {
	return r.get("id", id)
}

// GetByIDNumber busca por número de carné; nil si no existe.
func (r *StaffRepo) GetByIDNumber(staffIDNumber string) (*entity.Staff, error) {
	return r.get("staff_id_number", staffIDNumber)
}

func (r *StaffRepo) get(column string, arg any) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE ` + column + ` = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.StaffIDNumber, &s.Name, &s.JobID, &s.DepartmentID,
		&s.Role, &s.HashPassword, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// Update guarda los campos mutables del miembro (no toca la contraseña).
func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `
		UPDATE staff
		SET name = $1, job_id = $2, department_id = $3, role = $4
		WHERE id = $5`
	_, err := r.q.Exec(context.Background(), query,
		staff.Name, staff.JobID, staff.DepartmentID, staff.Role, staff.ID,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// UpdatePassword guarda el nuevo hash de contraseña.
func (r *StaffRepo) UpdatePassword(id int64, hashPassword string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE staff SET hash_password = $1 WHERE id = $2`, hashPassword, id,
	)
	if err != nil {
		return fmt.Errorf("update staff password: %w", err)
	}
	return nil
}

// Delete elimina el miembro.
func (r *StaffRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// List devuelve todo el personal ordenado por nombre.
func (r *StaffRepo) List() ([]entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var out []entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(
			&s.ID, &s.StaffIDNumber, &s.Name, &s.JobID, &s.DepartmentID,
			&s.Role, &s.HashPassword, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
