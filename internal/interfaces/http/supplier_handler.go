package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP para Supplier (superficie completa admin).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.DataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplier [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
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
// @Summary      Obtener proveedor por ID
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplier/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "proveedor no encontrado")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// GetProducts godoc
// @Summary      Proveedor con sus productos
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplier/{id}/products [get]
func (h *SupplierHandler) GetProducts(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "proveedor no encontrado")
	}
	out, err := h.uc.GetWithProducts(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// List godoc
// @Summary      Listar proveedores
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Filtro por subcadena"
// @Param        page  query  int     false  "Página"  default(1)
// @Param        size  query  int     false  "Tamaño"  default(10)
// @Success      200   {object}  dto.PagedResponse
// @Router       /api/supplier [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar proveedor
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplier/{id} [patch]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "proveedor no encontrado")
	}
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/supplier/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "proveedor no encontrado")
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return c.JSON(dto.DataResponse{Data: out})
}
