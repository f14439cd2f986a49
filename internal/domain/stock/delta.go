// Package stock contiene el núcleo puro de reconciliación del stock corriente:
// el delta tipado que describe qué libro cambió y la aplicación del delta sobre
// el agregado RunningStock.
package stock

// ReorderThreshold es la política fija de re-orden: por debajo de este remanente
// el estado del artículo pasa a re_order.
const ReorderThreshold = 10

// deltaKind discrimina las variantes de Delta.
type deltaKind int

const (
	kindFullRecompute deltaKind = iota
	kindIntake
	kindConsumption
	kindAdjustment
	kindAdjustmentReset
	kindRemoval
	kindCancellation
)

// Delta describe exactamente un cambio de libro a reconciliar. Las variantes son
// cerradas: se construyen solo con las funciones de este paquete.
type Delta struct {
	kind     deltaKind
	quantity int // según variante: cantidad agregada, total absoluto o cantidad retirada
	orderQty int // cantidad de la operación que disparó el delta
}

// Intake registra la entrada de un lote nuevo con la cantidad recibida.
func Intake(quantity int) Delta {
	return Delta{kind: kindIntake, quantity: quantity}
}

// Consumption registra una salida: outTotal es el total absoluto acumulado del
// libro de salidas del artículo y orderQty la cantidad de la orden que lo causó.
func Consumption(outTotal, orderQty int) Delta {
	return Delta{kind: kindConsumption, quantity: outTotal, orderQty: orderQty}
}

// Adjustment registra un ajuste manual: adjTotal es el total absoluto agrupado
// del libro de ajustes y orderQty la cantidad del ajuste que lo causó.
func Adjustment(adjTotal, orderQty int) Delta {
	return Delta{kind: kindAdjustment, quantity: adjTotal, orderQty: orderQty}
}

// AdjustmentReset pone en cero la contribución de ajustes (se borró el último ajuste).
func AdjustmentReset() Delta {
	return Delta{kind: kindAdjustmentReset}
}

// Removal registra el borrado de un lote no usado: resta su cantidad del total y del remanente.
func Removal(quantity int) Delta {
	return Delta{kind: kindRemoval, quantity: quantity}
}

// Cancellation registra la cancelación de un lote (reversa de orden de compra):
// resta su cantidad inicial solo del remanente, dejando la historia intacta.
func Cancellation(quantityInitiated int) Delta {
	return Delta{kind: kindCancellation, quantity: quantityInitiated}
}

// FullRecompute iguala el remanente al total vigente del libro de entradas.
func FullRecompute() Delta {
	return Delta{}
}
