package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restricción de la orden según disponibilidad al momento de crearla.
const (
	OrderPartAvailable    = "part_available"
	OrderPartNotAvailable = "part_not_available"
)

// Order es una solicitud de material de un miembro del personal contra un artículo.
// AvailableQuantity es la foto del remanente al momento de la orden.
type Order struct {
	ID                int64
	ItemID            int64
	StaffID           int64
	JobNumber         string
	PartName          string
	Quantity          int
	AvailableQuantity int
	TotalCost         decimal.Decimal
	Restriction       string
	CreatedAt         time.Time
}
