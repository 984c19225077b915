package entity

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID      int64
	Name    string
	Phone   string
	Address *string
}
