package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden.
const (
	OrderStatusInProcess = "In Process"
	OrderStatusShipped   = "Shipped"
	OrderStatusCancelled = "Cancelled"
	OrderStatusCompleted = "Completed"
)

// OrderStatuses lista los estados aceptados (para validación).
var OrderStatuses = []string{
	OrderStatusInProcess,
	OrderStatusShipped,
	OrderStatusCancelled,
	OrderStatusCompleted,
}

// Order representa una orden de compra de un usuario, despachada por un Shipper.
// Las líneas viven en Details; se crean junto con la cabecera en una sola transacción.
type Order struct {
	ID            int64
	Username      string
	ShipperID     int64
	Status        string
	ShippingPrice decimal.Decimal
	OrderDate     time.Time
	RequiredDate  time.Time
	ShippedDate   *time.Time
	Comment       *string
	Details       []OrderDetail
}

// OrderDetail es una línea de la orden: referencia un producto y congela su precio
// al momento de la compra (PriceEach).
type OrderDetail struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	QuantityOrdered int
	PriceEach       decimal.Decimal
}
