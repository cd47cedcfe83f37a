package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testEmail     = "cliente@tienda.test"
	testIssuer    = "tienda-api-test"
	testExpDias   = 7
)

// stubResolver confirma la identidad sin tocar la DB. Si cuentaOK es false
// simula una cuenta borrada o desactivada después de emitir el token.
type stubResolver struct {
	cuentaOK bool
	fallaDB  bool
}

func (s *stubResolver) Resolve(_ context.Context, claims *pkgjwt.Claims) (*entity.Principal, error) {
	if s.fallaDB {
		return nil, context.DeadlineExceeded
	}
	if !s.cuentaOK {
		return nil, domain.ErrCuentaNoEncontrada
	}
	return &entity.Principal{ID: claims.UserID, Email: claims.Email, Rol: claims.Rol}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// buildTestApp monta una ruta protegida con el extractor indicado y,
// opcionalmente, RequireRol.
func buildTestApp(resolver *stubResolver, extraer apphttp.TokenExtractor, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, resolver, extraer, testLogger())}
	if len(roles) > 0 {
		handlers = append(handlers, apphttp.RequireRol(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		p, ok := apphttp.GetPrincipal(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"id": p.ID, "email": p.Email, "rol": p.Rol})
	})
	app.Get("/protegida", handlers...)
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, rol, testIssuer, testExpDias)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func doRequest(t *testing.T, app *fiber.App, mod func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if mod != nil {
		mod(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Extracción del token: cookie y header
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinCredencial_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeCookieOHeader)
	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenPorCookie_Acepta(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeCookieOHeader)
	tok := tokenConRol(t, entity.RolCliente)
	resp := doRequest(t, app, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: apphttp.CookieToken, Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "la cookie auth-token debe autenticar")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUserID), body["id"])
	assert.Equal(t, testEmail, body["email"])
}

func TestAuthMiddleware_TokenPorHeader_Acepta(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeCookieOHeader)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenConRol(t, entity.RolCliente))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "el header Bearer debe autenticar")
}

// Las rutas admin de producto exigen el token por header: la cookie no basta.
func TestAuthMiddleware_ExtractorHeader_IgnoraCookie(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeHeader)
	tok := tokenConRol(t, entity.RolAdmin)
	resp := doRequest(t, app, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: apphttp.CookieToken, Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"con extractor de header la cookie no debe autenticar")
}

func TestAuthMiddleware_HeaderSinBearer_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeCookieOHeader)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", tokenConRol(t, entity.RolCliente)) // sin prefijo Bearer
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación del token y resolución de identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeCookieOHeader)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, entity.RolCliente, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token expirado debe rechazarse aunque la cuenta exista")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeCookieOHeader)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token con firma válida pero cuenta borrada o desactivada: mismo 401 que un
// token inválido, sin revelar que el token era bueno.
func TestAuthMiddleware_CuentaInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: false}, apphttp.TokenDesdeCookieOHeader)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenConRol(t, entity.RolCliente))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Un fallo de infraestructura al confirmar la cuenta no es un rechazo del
// token: debe ser 500.
func TestAuthMiddleware_FalloDB_Retorna500(t *testing.T) {
	app := buildTestApp(&stubResolver{fallaDB: true}, apphttp.TokenDesdeCookieOHeader)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenConRol(t, entity.RolCliente))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRol
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRol_AdminAccede(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeHeader, entity.RolAdmin)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenConRol(t, entity.RolAdmin))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RolAdmin, body["rol"])
}

func TestRequireRol_ClienteBloqueado(t *testing.T) {
	app := buildTestApp(&stubResolver{cuentaOK: true}, apphttp.TokenDesdeHeader, entity.RolAdmin)
	resp := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenConRol(t, entity.RolCliente))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cliente no debe acceder a rutas de admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
