package repository

import (
	"time"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// OrderRepository acceso a las órdenes de material.
type OrderRepository interface {
	Create(order *entity.Order) (*entity.Order, error)
	GetByID(id int64) (*entity.Order, error)
	Update(order *entity.Order) error
	// List devuelve las órdenes más recientes primero; from/to acotan por fecha
	// de creación cuando no son cero: from inclusivo, to exclusivo.
	List(from, to time.Time) ([]entity.Order, error)
}
