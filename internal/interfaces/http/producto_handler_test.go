package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
)

// buildProductoApp monta la ruta pública de producto. El caso de uso recibe
// repos nulos: los casos probados se rechazan antes de tocarlo.
func buildProductoApp() *fiber.App {
	handler := apphttp.NewProductoHandler(usecase.NewProductoUseCase(nil, nil, nil), testLogger())
	app := fiber.New()
	app.Get("/api/productos/:id", handler.ObtenerPublico)
	return app
}

// Un id no numérico es 400, nunca 404: la ruta existe, el argumento es
// inválido.
func TestParseID_NoNumerico_Retorna400(t *testing.T) {
	app := buildProductoApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/productos/abc", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"un id no numérico debe ser 400, no 404")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestParseID_NoPositivo_Retorna400(t *testing.T) {
	app := buildProductoApp()

	for _, id := range []string{"0", "-5"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/productos/"+id, nil), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
			"id %s debe rechazarse con 400", id)

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "INVALID_ID")
	}
}
