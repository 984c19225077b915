package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code            string          `json:"code" validate:"required,min=1,max=15"`
	Name            string          `json:"name" validate:"required,min=3,max=100"`
	Price           decimal.Decimal `json:"price" validate:"gt=0,lte=1000000000"`
	Description     string          `json:"description" validate:"required,min=3,max=500"`
	QuantityInStock int             `json:"quantityInStock" validate:"gte=0,lte=100000"`
	CategoryID      int64           `json:"categoryId" validate:"required,gt=0"`
	SupplierID      int64           `json:"supplierId" validate:"required,gt=0"`
}

// UpdateProductRequest entrada para actualizar un producto (todos los campos opcionales).
type UpdateProductRequest struct {
	Code            *string          `json:"code" validate:"omitempty,min=1,max=15"`
	Name            *string          `json:"name" validate:"omitempty,min=3,max=100"`
	Price           *decimal.Decimal `json:"price" validate:"omitempty,gt=0,lte=1000000000"`
	Description     *string          `json:"description" validate:"omitempty,min=3,max=500"`
	QuantityInStock *int             `json:"quantityInStock" validate:"omitempty,gte=0,lte=100000"`
	CategoryID      *int64           `json:"categoryId" validate:"omitempty,gt=0"`
	SupplierID      *int64           `json:"supplierId" validate:"omitempty,gt=0"`
}

// FilterProductsRequest filtros AND por subcadena + paginación (query params).
type FilterProductsRequest struct {
	Code        string `query:"code" validate:"omitempty,max=15"`
	Name        string `query:"name" validate:"omitempty,max=100"`
	Description string `query:"description" validate:"omitempty,max=500"`
	PageRequest
}

// SearchRequest búsqueda simple OR por subcadena (query params).
type SearchRequest struct {
	Q string `query:"q" validate:"required,min=1,max=100"`
	PageRequest
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              int64           `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description"`
	QuantityInStock int             `json:"quantityInStock"`
	CategoryID      int64           `json:"categoryId"`
	SupplierID      int64           `json:"supplierId"`
}
