package repository

import "github.com/jcastellr/almacen-api/internal/domain/entity"

// ItemRepository acceso a los artículos (códigos de barras).
type ItemRepository interface {
	Create(item *entity.Item) (*entity.Item, error)
	GetByID(id int64) (*entity.Item, error)
	GetByBarcode(barcode string) (*entity.Item, error)
	List() ([]entity.Item, error)
	// LastCode devuelve el último código interno emitido ("" si no hay artículos).
	LastCode() (string, error)
}
