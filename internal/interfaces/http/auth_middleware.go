package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
)

// LocalUser key del principal autenticado en Fiber Locals.
const LocalUser = "user"

// AuthMiddleware resuelve el header Authorization a un principal: el valor es un
// token opaco que se busca en la tabla de usuarios. Sin header o sin coincidencia
// la petición sigue como anónima; cada ruta decide con RequireAuth/RequireAdmin.
func AuthMiddleware(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get("Authorization"))
		// Se acepta el prefijo "Bearer " por conveniencia de clientes.
		if after, ok := strings.CutPrefix(token, "Bearer "); ok {
			token = strings.TrimSpace(after)
		}
		if token == "" {
			return c.Next()
		}
		user, err := userRepo.GetByToken(token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Errors: "error interno"})
		}
		if user != nil {
			c.Locals(LocalUser, user)
		}
		return c.Next()
	}
}

// RequireAuth corta con 401 si no hay principal autenticado.
func RequireAuth(c *fiber.Ctx) error {
	if GetUser(c) == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Errors: "no autenticado"})
	}
	return c.Next()
}

// RequireAdmin corta con 401 si no hay principal y con 403 si el rol no es ADMIN.
// Los dos casos son distintos: no autenticado vs. autenticado sin permisos.
func RequireAdmin(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Errors: "no autenticado"})
	}
	if !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Errors: "requiere rol ADMIN"})
	}
	return c.Next()
}

// GetUser devuelve el principal del contexto o nil si la petición es anónima.
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
