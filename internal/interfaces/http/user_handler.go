package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/auth"
	"github.com/tu-usuario/store-api/internal/application/dto"
)

// UserHandler maneja registro, login y la cuenta del usuario autenticado.
type UserHandler struct {
	uc *auth.UseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/user/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// Login godoc
// @Summary      Iniciar sesión (rota el token)
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.DataResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Current godoc
// @Summary      Usuario actual
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/user/current [get]
func (h *UserHandler) Current(c *fiber.Ctx) error {
	return c.JSON(dto.DataResponse{Data: h.uc.Current(GetUser(c))})
}

// UpdateProfile godoc
// @Summary      Actualizar perfil
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/user/current [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProfile(GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePasswordRequest  true  "Contraseña actual y nueva"
// @Success      200   {object}  dto.DataResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/user/current/password [patch]
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePassword(GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Logout godoc
// @Summary      Cerrar sesión (limpia el token)
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/user/current [delete]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(GetUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: true})
}
