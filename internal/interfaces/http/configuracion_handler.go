package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type ConfiguracionHandler struct {
	useCase *usecase.ConfiguracionUseCase
	log     *logger.Logger
}

func NewConfiguracionHandler(useCase *usecase.ConfiguracionUseCase, log *logger.Logger) *ConfiguracionHandler {
	return &ConfiguracionHandler{useCase: useCase, log: log}
}

// ObtenerPublica expone la configuración de la tienda a la vitrina.
func (h *ConfiguracionHandler) ObtenerPublica(c *fiber.Ctx) error {
	resp, err := h.useCase.Obtener(c.Context())
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

// Actualizar aplica un patch parcial: solo los campos presentes cambian.
func (h *ConfiguracionHandler) Actualizar(c *fiber.Ctx) error {
	var req dto.ActualizarConfiguracionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.Actualizar(c.Context(), req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}
