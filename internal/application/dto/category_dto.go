package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryWithProductsResponse categoría con sus productos (carga ansiosa).
type CategoryWithProductsResponse struct {
	CategoryResponse
	Products []ProductResponse `json:"products"`
}
