package stock

import (
	"context"

	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

// LedgerRepos agrupa los repositorios de los libros de inventario atados a una
// misma transacción. El orquestador de órdenes comparte la tx a través de esta
// misma estructura.
type LedgerRepos struct {
	Lots        repository.StockLotRepository
	Outs        repository.StockOutRepository
	Adjustments repository.StockAdjustmentRepository
	Running     repository.RunningStockRepository
	Evaluations repository.CostEvaluationRepository
	Orders      repository.OrderRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios de libros atados a esa tx. Garantiza atomicidad para la secuencia
// leer-modificar-escribir del motor de inventario: o se confirma todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(r LedgerRepos) error) error
}
