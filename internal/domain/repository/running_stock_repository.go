package repository

import "github.com/jcastellr/almacen-api/internal/domain/entity"

// RunningStockRepository acceso al agregado derivado por artículo (1:1 con Item).
// La fila nunca se borra; se crea perezosamente en la primera mutación de libro.
type RunningStockRepository interface {
	GetByItem(itemID int64) (*entity.RunningStock, error)
	// GetByItemForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	// Devuelve nil, nil si el artículo aún no tiene fila.
	GetByItemForUpdate(itemID int64) (*entity.RunningStock, error)
	Save(rs *entity.RunningStock) (*entity.RunningStock, error)
	List() ([]entity.RunningStock, error)
}
