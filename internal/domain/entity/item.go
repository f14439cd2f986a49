package entity

import "time"

// Item identifica una unidad de inventario (SKU) por su código de barras.
// Identidad estable: se crea una vez y rara vez se modifica.
type Item struct {
	ID            int64
	Barcode       string // único
	Code          string // consecutivo interno generado (SKX-n)
	Specification string
	Location      string
	Category      string
	ERMCode       string // referencia externa opcional
	CreatedAt     time.Time
}
