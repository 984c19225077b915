package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=50"`
	Phone   string  `json:"phone" validate:"required,min=1,max=15"`
	Address *string `json:"address" validate:"omitempty,min=1,max=255"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (campos opcionales).
type UpdateSupplierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=50"`
	Phone   *string `json:"phone" validate:"omitempty,min=1,max=15"`
	Address *string `json:"address" validate:"omitempty,min=1,max=255"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// SupplierWithProductsResponse proveedor con sus productos (carga ansiosa).
type SupplierWithProductsResponse struct {
	SupplierResponse
	Products []ProductResponse `json:"products"`
}
