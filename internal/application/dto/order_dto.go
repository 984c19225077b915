package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetailRequest una línea de la orden a crear.
type OrderDetailRequest struct {
	ProductID       int64           `json:"productId" validate:"required,gt=0"`
	QuantityOrdered int             `json:"quantityOrdered" validate:"required,gt=0"`
	PriceEach       decimal.Decimal `json:"priceEach" validate:"gt=0"`
}

// CreateOrderRequest entrada para crear una orden con sus líneas.
type CreateOrderRequest struct {
	ShipperID     int64                `json:"shipperId" validate:"required,gt=0"`
	ShippingPrice decimal.Decimal      `json:"shippingPrice" validate:"gt=0"`
	OrderDate     *time.Time           `json:"orderDate"`
	RequiredDate  time.Time            `json:"requiredDate" validate:"required"`
	ShippedDate   *time.Time           `json:"shippedDate"`
	Status        string               `json:"status" validate:"omitempty,oneof='In Process' Shipped Cancelled Completed"`
	Comment       *string              `json:"comment" validate:"omitempty,max=255"`
	OrderDetail   []OrderDetailRequest `json:"orderDetail" validate:"required,min=1,dive"`
}

// UpdateOrderRequest entrada para actualizar una orden. Un usuario solo puede
// tocar comment; status y shippedDate son de uso administrativo.
type UpdateOrderRequest struct {
	Status      *string    `json:"status" validate:"omitempty,oneof='In Process' Shipped Cancelled Completed"`
	ShippedDate *time.Time `json:"shippedDate"`
	Comment     *string    `json:"comment" validate:"omitempty,max=255"`
}

// OrderDetailResponse salida de una línea de orden.
type OrderDetailResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"productId"`
	QuantityOrdered int             `json:"quantityOrdered"`
	PriceEach       decimal.Decimal `json:"priceEach"`
}

// OrderResponse salida de una orden con sus líneas.
type OrderResponse struct {
	ID            int64                 `json:"id"`
	Username      string                `json:"username"`
	ShipperID     int64                 `json:"shipperId"`
	Status        string                `json:"status"`
	ShippingPrice decimal.Decimal       `json:"shippingPrice"`
	OrderDate     time.Time             `json:"orderDate"`
	RequiredDate  time.Time             `json:"requiredDate"`
	ShippedDate   *time.Time            `json:"shippedDate,omitempty"`
	Comment       *string               `json:"comment,omitempty"`
	OrderDetail   []OrderDetailResponse `json:"orderDetail"`
}
