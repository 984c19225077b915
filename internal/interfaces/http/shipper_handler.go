package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/application/usecase"
)

// ShipperHandler maneja las peticiones HTTP para Shipper (lectura pública, escritura admin).
type ShipperHandler struct {
	uc *usecase.ShipperUseCase
}

// NewShipperHandler construye el handler.
func NewShipperHandler(uc *usecase.ShipperUseCase) *ShipperHandler {
	return &ShipperHandler{uc: uc}
}

// Create godoc
// @Summary      Crear transportadora
// @Tags         shippers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipperRequest  true  "Datos de la transportadora"
// @Success      201   {object}  dto.DataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shippers [post]
func (h *ShipperHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipperRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// GetByID godoc
// @Summary      Obtener transportadora por ID
// @Tags         shippers
// @Produce      json
// @Param        id  path  int  true  "ID de la transportadora"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shippers/{id} [get]
func (h *ShipperHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "transportadora no encontrada")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "transportadora no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// GetOrders godoc
// @Summary      Transportadora con sus órdenes
// @Tags         shippers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la transportadora"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shippers/{id}/orders [get]
func (h *ShipperHandler) GetOrders(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "transportadora no encontrada")
	}
	out, err := h.uc.GetWithOrders(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "transportadora no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// List godoc
// @Summary      Listar transportadoras
// @Tags         shippers
// @Produce      json
// @Param        q     query  string  false  "Filtro por subcadena"
// @Param        page  query  int     false  "Página"  default(1)
// @Param        size  query  int     false  "Tamaño"  default(10)
// @Success      200   {object}  dto.PagedResponse
// @Router       /api/shippers [get]
func (h *ShipperHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar transportadora
// @Tags         shippers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la transportadora"
// @Param        body  body  dto.UpdateShipperRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shippers/{id} [patch]
func (h *ShipperHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "transportadora no encontrada")
	}
	var in dto.UpdateShipperRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "transportadora no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete godoc
// @Summary      Eliminar transportadora
// @Tags         shippers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la transportadora"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shippers/{id} [delete]
func (h *ShipperHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "transportadora no encontrada")
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "transportadora no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}
