package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type AuthHandler struct {
	useCase *auth.AuthUseCase
	expDias int
	log     *logger.Logger
}

func NewAuthHandler(useCase *auth.AuthUseCase, expDias int, log *logger.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, expDias: expDias, log: log}
}

// Registro crea la cuenta y abre sesión de inmediato.
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var req dto.RegistroRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	sesion, err := h.useCase.Registrar(c.Context(), req)
	if err != nil {
		return respError(c, h.log, err)
	}
	h.setCookieSesion(c, sesion.Token)
	return c.Status(fiber.StatusCreated).JSON(sesion)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	sesion, err := h.useCase.Login(c.Context(), req)
	if err != nil {
		return respError(c, h.log, err)
	}
	h.setCookieSesion(c, sesion.Token)
	return c.JSON(sesion)
}

// Logout borra la cookie. El token sigue siendo válido hasta su expiración;
// no hay lista de revocación.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"mensaje": "sesión cerrada"})
}

// setCookieSesion deja el token también en cookie HttpOnly para los clientes
// de navegador; el JSON lo lleva igualmente para clientes de API.
func (h *AuthHandler) setCookieSesion(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    token,
		Expires:  time.Now().AddDate(0, 0, h.expDias),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}
