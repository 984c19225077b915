package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/store-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/store-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTokenUser  = "tok-usuario-0001"
	testTokenAdmin = "tok-admin-0002"
)

// fakeUserRepo implementa repository.UserRepository en memoria, indexado por token.
type fakeUserRepo struct {
	byToken map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	userTok, adminTok := testTokenUser, testTokenAdmin
	return &fakeUserRepo{byToken: map[string]*entity.User{
		userTok:  {Username: "cliente", Role: entity.RoleUser, Token: &userTok},
		adminTok: {Username: "admin", Role: entity.RoleAdmin, Token: &adminTok},
	}}
}

func (r *fakeUserRepo) Create(*entity.User) error { return nil }
func (r *fakeUserRepo) GetByUsername(string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByToken(token string) (*entity.User, error) {
	return r.byToken[token], nil
}
func (r *fakeUserRepo) Update(*entity.User) error           { return nil }
func (r *fakeUserRepo) UpdateToken(string, *string) error   { return nil }
func (r *fakeUserRepo) UpdatePassword(string, string) error { return nil }

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para resolver el token opaco a un principal
//   - Una ruta pública, una que exige sesión y una que exige rol ADMIN
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(newFakeUserRepo()))

	whoami := func(c *fiber.Ctx) error {
		u := apphttp.GetUser(c)
		username := ""
		if u != nil {
			username = u.Username
		}
		return c.JSON(fiber.Map{"username": username})
	}
	app.Get("/public", whoami)
	app.Get("/private", apphttp.RequireAuth, whoami)
	app.Get("/admin", apphttp.RequireAdmin, whoami)
	return app
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeUsername extrae el campo username del cuerpo JSON.
func decodeUsername(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["username"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — resolución del token opaco
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization la petición sigue como anónima en rutas públicas.
func TestAuthMiddleware_SinToken_RutaPublicaAnonima(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/public", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ruta pública debe responder 200 sin token")
	assert.Equal(t, "", decodeUsername(t, resp), "sin token no hay principal")
}

// Caso 2: Token válido carga el principal en Locals.
func TestAuthMiddleware_TokenValido_CargaPrincipal(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/public", testTokenUser)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cliente", decodeUsername(t, resp))
}

// Caso 2b: Se acepta el prefijo "Bearer " en el header.
func TestAuthMiddleware_PrefijoBearer_Aceptado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/private", "Bearer "+testTokenUser)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el prefijo Bearer debe descartarse antes de buscar el token")
	assert.Equal(t, "cliente", decodeUsername(t, resp))
}

// Caso 3: Token desconocido no carga principal; la ruta protegida responde 401.
func TestAuthMiddleware_TokenDesconocido_Retorna401EnPrivada(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/private", "token-que-no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token desconocido equivale a petición anónima")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAuth / RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: Sin sesión la ruta privada responde 401.
func TestRequireAuth_SinSesion_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/private", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "no autenticado",
		"el cuerpo debe indicar la falta de autenticación")
}

// Caso 5: Usuario USER autenticado en ruta ADMIN → 403 Forbidden.
func TestRequireAdmin_UsuarioNormal_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", testTokenUser)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"usuario sin rol ADMIN no debe acceder a rutas de administración")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ADMIN")
}

// Caso 5b: Anónimo en ruta ADMIN → 401, no 403 (no autenticado ≠ sin permisos).
func TestRequireAdmin_Anonimo_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: ADMIN accede a ruta de administración → 200.
func TestRequireAdmin_Admin_Retorna200(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", testTokenAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", decodeUsername(t, resp))
}
