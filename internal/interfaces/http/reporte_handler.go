package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/reportes"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type ReporteHandler struct {
	useCase *reportes.CatalogoUseCase
	log     *logger.Logger
}

func NewReporteHandler(useCase *reportes.CatalogoUseCase, log *logger.Logger) *ReporteHandler {
	return &ReporteHandler{useCase: useCase, log: log}
}

// CatalogoPDF genera el catálogo de productos en PDF para descarga.
func (h *ReporteHandler) CatalogoPDF(c *fiber.Ctx) error {
	pdf, err := h.useCase.GenerarPDF(c.Context())
	if err != nil {
		return respError(c, h.log, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="catalogo.pdf"`)
	return c.Send(pdf)
}
