package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Hospitalario-api/internal/interfaces/http"
	"github.com/jhoicas/Hospitalario-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma una app mínima con las rutas protegidas típicas:
// /perfil requiere solo token; /admin requiere rol admin; /clinica acepta
// doctor o nurse.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testSecret))
	protected.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(fiber.Map{
			"user_id":       apphttp.GetUserID(c),
			"department_id": apphttp.GetDepartmentID(c),
			"role":          apphttp.GetRole(c),
		}, ""))
	})
	protected.Get("/admin", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(nil, "zona admin"))
	})
	protected.Get("/clinica", apphttp.RequireRole(entity.RoleDoctor, entity.RoleNurse), func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(nil, "zona clínica"))
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "dept-1", role, "hospitalario-api", 15)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (*nethttp.Response, dto.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope dto.APIResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenRetorna401(t *testing.T) {
	app := buildTestApp()

	resp, envelope := doRequest(t, app, "/perfil", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}

func TestAuthMiddleware_FormatoInvalidoRetorna401(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(nethttp.MethodGet, "/perfil", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenBasuraRetorna401(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "/perfil", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrectaRetorna401(t *testing.T) {
	app := buildTestApp()

	token, err := jwt.Generate("otro-secreto", "user-1", "", entity.RoleAdmin, "hospitalario-api", 15)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "/perfil", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	app := buildTestApp()

	token, err := jwt.Generate(testSecret, "user-1", "", entity.RoleAdmin, "hospitalario-api", -5)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "/perfil", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaimsALocals(t *testing.T) {
	app := buildTestApp()

	resp, envelope := doRequest(t, app, "/perfil", tokenForRole(t, entity.RoleDoctor))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user-1", data["user_id"])
	assert.Equal(t, "dept-1", data["department_id"])
	assert.Equal(t, entity.RoleDoctor, data["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp()

	resp, envelope := doRequest(t, app, "/admin", tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)
}

func TestRequireRole_RolAjenoRecibe403(t *testing.T) {
	app := buildTestApp()

	resp, envelope := doRequest(t, app, "/admin", tokenForRole(t, entity.RoleNurse))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}

func TestRequireRole_ListaDeRolesAceptaCualquiera(t *testing.T) {
	app := buildTestApp()

	for _, role := range []string{entity.RoleDoctor, entity.RoleNurse} {
		resp, _ := doRequest(t, app, "/clinica", tokenForRole(t, role))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "rol %s", role)
	}

	resp, _ := doRequest(t, app, "/clinica", tokenForRole(t, entity.RolePharmacist))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// jwt round-trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerarYParsear(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-9", "dept-3", entity.RolePharmacist, "hospitalario-api", 30)
	require.NoError(t, err)

	userID, departmentID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", userID)
	assert.Equal(t, "dept-3", departmentID)
	assert.Equal(t, entity.RolePharmacist, role)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "", entity.RoleAdmin, "hospitalario-api", 15)
	require.Error(t, err)

	_, _, _, err = jwt.Parse("", "cualquier-token")
	require.Error(t, err)
}
