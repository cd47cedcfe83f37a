package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/reportes"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	Resolver        *auth.IdentityResolver
	ProductoUC      *usecase.ProductoUseCase
	VarianteUC      *usecase.VarianteUseCase
	PedidoUC        *usecase.PedidoUseCase
	ConfiguracionUC *usecase.ConfiguracionUseCase
	DashboardUC     *analytics.DashboardUseCase
	CatalogoUC      *reportes.CatalogoUseCase
	JWTSecret       string
	JWTExpDias      int
	Log             *logger.Logger
}

// Router registra las rutas de la API.
//
// Tres niveles de acceso: público (vitrina), autenticado (cookie o header
// Bearer) y mutaciones admin de producto, que exigen el token por header: la
// cookie del navegador no basta para operaciones destructivas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	sesion := AuthMiddleware(deps.JWTSecret, deps.Resolver, TokenDesdeCookieOHeader, deps.Log)
	sesionHeader := AuthMiddleware(deps.JWTSecret, deps.Resolver, TokenDesdeHeader, deps.Log)
	soloAdmin := RequireRol(entity.RolAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpDias, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Vitrina (público, solo productos activos)
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.Log)
	varianteHandler := NewVarianteHandler(deps.VarianteUC, deps.Log)
	configuracionHandler := NewConfiguracionHandler(deps.ConfiguracionUC, deps.Log)
	api.Get("/productos", productoHandler.ListarPublico)
	api.Get("/productos/:id", productoHandler.ObtenerPublico)
	api.Get("/productos/:id/variantes", varianteHandler.ListarPorProducto)
	api.Get("/productos/:id/imagenes", productoHandler.ListarImagenes)
	api.Get("/configuracion", configuracionHandler.ObtenerPublica)

	// Pedidos (autenticado: cookie o header)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.Log)
	pedidos := api.Group("/pedidos", sesion)
	pedidos.Post("/", pedidoHandler.Crear)
	pedidos.Get("/mios", pedidoHandler.ListarMios)
	pedidos.Get("/:id", pedidoHandler.ObtenerPorID)
	pedidos.Post("/:id/pagar", pedidoHandler.Pagar)

	// Mutaciones de producto (admin, token solo por header)
	adminProductos := api.Group("/productos", sesionHeader, soloAdmin)
	adminProductos.Post("/", productoHandler.Crear)
	adminProductos.Put("/:id", productoHandler.Actualizar)
	adminProductos.Post("/:id/activar", productoHandler.Activar)
	adminProductos.Post("/:id/desactivar", productoHandler.Desactivar)
	adminProductos.Post("/:id/restaurar", productoHandler.Restaurar)
	adminProductos.Delete("/:id", productoHandler.Eliminar)
	adminProductos.Delete("/:id/eliminar-permanente", productoHandler.EliminarPermanente)
	adminProductos.Put("/:id/sincronizar-stock", productoHandler.SincronizarStock)
	adminProductos.Post("/:id/variantes", varianteHandler.Crear)
	adminProductos.Post("/:id/imagenes", productoHandler.RegistrarImagen)

	adminVariantes := api.Group("/variantes", sesionHeader, soloAdmin)
	adminVariantes.Put("/:varianteId", varianteHandler.Actualizar)
	adminVariantes.Delete("/:varianteId", varianteHandler.Eliminar)

	adminImagenes := api.Group("/imagenes", sesionHeader, soloAdmin)
	adminImagenes.Delete("/:imagenId", productoHandler.EliminarImagen)

	// Panel admin (autenticado + rol admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	reporteHandler := NewReporteHandler(deps.CatalogoUC, deps.Log)
	admin := api.Group("/admin", sesion, soloAdmin)
	admin.Get("/dashboard", dashboardHandler.Resumen)
	admin.Get("/productos", productoHandler.ListarAdmin)
	admin.Get("/productos/:id", productoHandler.ObtenerAdmin)
	admin.Get("/pedidos", pedidoHandler.ListarTodos)
	admin.Put("/configuracion", configuracionHandler.Actualizar)
	admin.Get("/reportes/catalogo", reporteHandler.CatalogoPDF)
}
