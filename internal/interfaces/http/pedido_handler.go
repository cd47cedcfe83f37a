package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type PedidoHandler struct {
	useCase *usecase.PedidoUseCase
	log     *logger.Logger
}

func NewPedidoHandler(useCase *usecase.PedidoUseCase, log *logger.Logger) *PedidoHandler {
	return &PedidoHandler{useCase: useCase, log: log}
}

func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	principal, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial requerida"})
	}
	var req dto.CrearPedidoRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.Crear(c.Context(), principal.ID, req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ObtenerPorID devuelve el pedido solo a su dueño o a un admin.
func (h *PedidoHandler) ObtenerPorID(c *fiber.Ctx) error {
	principal, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial requerida"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.ObtenerPorID(c.Context(), principal, id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *PedidoHandler) ListarMios(c *fiber.Ctx) error {
	principal, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial requerida"})
	}
	limit, offset := paginacion(c)
	resp, err := h.useCase.ListarMios(c.Context(), principal.ID, limit, offset)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *PedidoHandler) ListarTodos(c *fiber.Ctx) error {
	limit, offset := paginacion(c)
	resp, err := h.useCase.ListarTodos(c.Context(), limit, offset)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

// Pagar simula el cobro del pedido y lo marca como pagado.
func (h *PedidoHandler) Pagar(c *fiber.Ctx) error {
	principal, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial requerida"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.Pagar(c.Context(), principal, id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}
