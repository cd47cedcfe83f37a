package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type DashboardHandler struct {
	useCase *analytics.DashboardUseCase
	log     *logger.Logger
}

func NewDashboardHandler(useCase *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{useCase: useCase, log: log}
}

// Resumen entrega los contadores del panel y la lista de bajo stock.
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	resp, err := h.useCase.GetResumen(c.Context())
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}
