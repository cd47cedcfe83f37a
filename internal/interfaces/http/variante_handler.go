package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type VarianteHandler struct {
	useCase *usecase.VarianteUseCase
	log     *logger.Logger
}

func NewVarianteHandler(useCase *usecase.VarianteUseCase, log *logger.Logger) *VarianteHandler {
	return &VarianteHandler{useCase: useCase, log: log}
}

func (h *VarianteHandler) ListarPorProducto(c *fiber.Ctx) error {
	productoID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.ListarPorProducto(c.Context(), productoID)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *VarianteHandler) Crear(c *fiber.Ctx) error {
	productoID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CrearVarianteRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.Crear(c.Context(), productoID, req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *VarianteHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c, "varianteId")
	if err != nil {
		return err
	}
	var req dto.ActualizarVarianteRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.Actualizar(c.Context(), id, req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

// Eliminar borra la variante. El stock del producto no se recalcula aquí;
// eso lo hace la sincronización bajo demanda.
func (h *VarianteHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c, "varianteId")
	if err != nil {
		return err
	}
	if err := h.useCase.Eliminar(c.Context(), id); err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"mensaje": "variante eliminada"})
}
