package repository

import "github.com/jcastellr/almacen-api/internal/domain/entity"

// PurchaseOrderRepository acceso a las órdenes de compra y sus líneas.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) (*entity.PurchaseOrder, error)
	// GetByID carga la orden con sus líneas.
	GetByID(id int64) (*entity.PurchaseOrder, error)
	Update(po *entity.PurchaseOrder) error
	UpdateState(id int64, state string) error
	Delete(id int64) error
	List() ([]entity.PurchaseOrder, error)

	AddItem(item *entity.PurchaseOrderItem) (*entity.PurchaseOrderItem, error)
	UpdateItem(item *entity.PurchaseOrderItem) error
	DeleteItem(id int64) error
}
