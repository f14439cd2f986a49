package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/application/order"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Barcode   string `json:"barcode"`
	Quantity  int    `json:"quantity"`
	JobNumber string `json:"job_number"`
	PartName  string `json:"part_name"`
}

// OrderResponse representación de una orden de material.
type OrderResponse struct {
	ID                int64           `json:"id"`
	ItemID            int64           `json:"item_id"`
	StaffID           int64           `json:"staff_id"`
	JobNumber         string          `json:"job_number"`
	PartName          string          `json:"part_name"`
	Quantity          int             `json:"quantity"`
	AvailableQuantity int             `json:"available_quantity"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	Restriction       string          `json:"restriction"`
	CreatedAt         time.Time       `json:"created_at"`
}

// FromOrder convierte la entidad a su representación HTTP.
func FromOrder(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		ItemID:            o.ItemID,
		StaffID:           o.StaffID,
		JobNumber:         o.JobNumber,
		PartName:          o.PartName,
		Quantity:          o.Quantity,
		AvailableQuantity: o.AvailableQuantity,
		TotalCost:         o.TotalCost,
		Restriction:       o.Restriction,
		CreatedAt:         o.CreatedAt,
	}
}

// AvailabilityResponse disponibilidad corriente de un artículo.
type AvailabilityResponse struct {
	Barcode       string `json:"barcode"`
	Specification string `json:"specification"`
	Location      string `json:"location"`
	Status        string `json:"status"`
	Remaining     int    `json:"remaining"`
}

// FromAvailability convierte la consulta a su representación HTTP.
func FromAvailability(a *order.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Barcode:       a.Barcode,
		Specification: a.Specification,
		Location:      a.Location,
		Status:        string(a.Status),
		Remaining:     a.Remaining,
	}
}
