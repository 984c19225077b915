package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Code y Name son únicos en la tabla;
// cada producto pertenece exactamente a una Category y a un Supplier.
type Product struct {
	ID              int64
	Code            string // código único de producto
	Name            string
	Price           decimal.Decimal // precio de venta, siempre positivo
	Description     string
	QuantityInStock int // nunca negativo
	CategoryID      int64
	SupplierID      int64
}
