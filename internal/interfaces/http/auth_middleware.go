package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// CookieToken nombre de la cookie de sesión.
const CookieToken = "auth-token"

// LocalPrincipal key del Principal resuelto en c.Locals.
const LocalPrincipal = "principal"

// TokenExtractor saca el token crudo de la petición; "" si no hay.
type TokenExtractor func(c *fiber.Ctx) string

// TokenDesdeCookieOHeader busca primero la cookie auth-token y luego el header
// Authorization: Bearer. Es el extractor general de la API.
func TokenDesdeCookieOHeader(c *fiber.Ctx) string {
	if tok := c.Cookies(CookieToken); tok != "" {
		return tok
	}
	return tokenBearer(c)
}

// TokenDesdeHeader acepta únicamente Authorization: Bearer. Lo usan las
// mutaciones de producto del panel admin.
func TokenDesdeHeader(c *fiber.Ctx) string {
	return tokenBearer(c)
}

func tokenBearer(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// identityResolver es el contrato mínimo que necesita el middleware para
// confirmar la cuenta contra la DB. Lo implementa *auth.IdentityResolver; el
// uso de interfaz evita el import circular y permite stubs en tests.
type identityResolver interface {
	Resolve(ctx context.Context, claims *jwt.Claims) (*entity.Principal, error)
}

// AuthMiddleware valida el token y resuelve el Principal a c.Locals.
//
// Token ausente, malformado, expirado o con firma rota, y cuenta inexistente o
// inactiva: todos responden 401. Solo el log distingue los casos; al cliente no
// se le revela cuál falló. Un fallo de infraestructura al consultar la DB es
// 500, no 401: el token no fue rechazado, la verificación no pudo correr.
func AuthMiddleware(jwtSecret string, resolver identityResolver, extraer TokenExtractor, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extraer(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "credencial requerida"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		principal, err := resolver.Resolve(c.Context(), claims)
		if err != nil {
			if errors.Is(err, domain.ErrCuentaNoEncontrada) {
				log.Warn().Int64("usuario_id", claims.UserID).Msg("token válido pero la cuenta no existe o está inactiva")
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
			}
			log.Error().Err(err).Msg("resolver identidad")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		c.Locals(LocalPrincipal, *principal)
		return c.Next()
	}
}

// RequireRol autoriza solo a principals con alguno de los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial requerida"})
		}
		for _, r := range roles {
			if principal.Rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
	}
}

// GetPrincipal devuelve el Principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (entity.Principal, bool) {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return entity.Principal{}, false
	}
	p, ok := v.(entity.Principal)
	return p, ok
}
