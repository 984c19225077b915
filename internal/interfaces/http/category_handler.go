package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category (lectura pública, escritura admin).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         category
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.DataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/category [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
// @Summary      Obtener categoría por ID
// @Tags         category
// @Produce      json
// @Param        id  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/category/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "categoría no encontrada")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// GetProducts godoc
// @Summary      Categoría con sus productos
// @Tags         category
// @Produce      json
// @Param        id  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/category/{id}/products [get]
func (h *CategoryHandler) GetProducts(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "categoría no encontrada")
	}
	out, err := h.uc.GetWithProducts(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// List godoc
// @Summary      Listar categorías
// @Tags         category
// @Produce      json
// @Param        q     query  string  false  "Filtro por subcadena"
// @Param        page  query  int     false  "Página"  default(1)
// @Param        size  query  int     false  "Tamaño"  default(10)
// @Success      200   {object}  dto.PagedResponse
// @Router       /api/category [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar categoría
// @Tags         category
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/category/{id} [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "categoría no encontrada")
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         category
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/category/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "categoría no encontrada")
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.DataResponse{Data: out})
}
