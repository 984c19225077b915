package dto

// CreateShipperRequest entrada para crear una transportadora.
type CreateShipperRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"required,min=1,max=15"`
}

// UpdateShipperRequest entrada para actualizar una transportadora (campos opcionales).
type UpdateShipperRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" validate:"omitempty,min=1,max=15"`
}

// ShipperResponse salida de una transportadora.
type ShipperResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ShipperWithOrdersResponse transportadora con sus órdenes (carga ansiosa).
type ShipperWithOrdersResponse struct {
	ShipperResponse
	Orders []OrderResponse `json:"orders"`
}
