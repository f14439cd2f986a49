package repository

import "github.com/jcastellr/almacen-api/internal/domain/entity"

// StockAdjustmentRepository acceso al libro de ajustes manuales.
type StockAdjustmentRepository interface {
	Create(adj *entity.StockAdjustmentEntry) (*entity.StockAdjustmentEntry, error)
	GetByID(id int64) (*entity.StockAdjustmentEntry, error)
	Update(adj *entity.StockAdjustmentEntry) error
	Delete(id int64) error
	SumForItem(itemID int64) (LedgerSum, error)
	CountForItem(itemID int64) (int, error)
	List() ([]entity.StockAdjustmentEntry, error)
}
