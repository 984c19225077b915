package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para Order (todas autenticadas).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden con sus líneas (transaccional)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Orden a crear"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// GetByID godoc
// @Summary      Obtener orden por ID (dueño o admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "orden no encontrada")
	}
	out, err := h.uc.GetByID(GetUser(c), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// List godoc
// @Summary      Listar órdenes (propias; un admin ve todas)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Param        size  query  int  false  "Tamaño"  default(10)
// @Success      200  {object}  dto.PagedResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden (usuario: comment; admin: status/shippedDate/comment)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "orden no encontrada")
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetUser(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Receipt godoc
// @Summary      Recibo PDF de la orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "orden no encontrada")
	}
	pdfBytes, err := h.uc.Receipt(GetUser(c), id)
	if err != nil {
		return writeError(c, err)
	}
	if pdfBytes == nil {
		return notFound(c, "orden no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="orden_%d.pdf"`, id))
	return c.Send(pdfBytes)
}
