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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.Item) (*entity.Item, error) {
	query := `
		INSERT INTO items (barcode, code, specification, location, category, erm_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Barcode, item.Code, item.Specification, item.Location, item.Category, item.ERMCode, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// GetByID obtiene un artículo por id.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	return r.get("id = $1", id)
}

// GetByBarcode obtiene un artículo por código de barras.
func (r *ItemRepo) GetByBarcode(barcode string) (*entity.Item, error) {
	return r.get("barcode = $1", barcode)
}

func (r *ItemRepo) get(where string, arg any) (*entity.Item, error) {
	query := `
		SELECT id, barcode, code, specification, location, category, erm_code, created_at
		FROM items WHERE ` + where
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Barcode, &it.Code, &it.Specification, &it.Location, &it.Category, &it.ERMCode, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List devuelve todos los artículos, más recientes primero.
func (r *ItemRepo) List() ([]entity.Item, error) {
	query := `
		SELECT id, barcode, code, specification, location, category, erm_code, created_at
		FROM items ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Barcode, &it.Code, &it.Specification, &it.Location, &it.Category, &it.ERMCode, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// LastCode devuelve el último código interno emitido ("" si no hay artículos).
func (r *ItemRepo) LastCode() (string, error) {
	var code string
	err := r.q.QueryRow(context.Background(),
		`SELECT code FROM items ORDER BY id DESC LIMIT 1`).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last item code: %w", err)
	}
	return code, nil
}
