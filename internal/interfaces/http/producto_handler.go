package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type ProductoHandler struct {
	useCase *usecase.ProductoUseCase
	log     *logger.Logger
}

func NewProductoHandler(useCase *usecase.ProductoUseCase, log *logger.Logger) *ProductoHandler {
	return &ProductoHandler{useCase: useCase, log: log}
}

// paginacion lee limit/offset de la query con valores por defecto acotados.
func paginacion(c *fiber.Ctx) (limit, offset int) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		page = dto.PageRequest{}
	}
	page.DefaultPage()
	return page.Limit, page.Offset
}

// ListarPublico devuelve solo productos activos, listos para la vitrina.
func (h *ProductoHandler) ListarPublico(c *fiber.Ctx) error {
	limit, offset := paginacion(c)
	resp, err := h.useCase.ListarPublico(c.Context(), limit, offset)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

// ObtenerPublico devuelve un producto activo. Inactivo, eliminado o inexistente
// responden el mismo 404: la vitrina no revela el estado interno.
func (h *ProductoHandler) ObtenerPublico(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.ObtenerPublico(c.Context(), id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *ProductoHandler) ListarAdmin(c *fiber.Ctx) error {
	limit, offset := paginacion(c)
	incluirEliminados := c.QueryBool("eliminados", false)
	resp, err := h.useCase.ListarAdmin(c.Context(), incluirEliminados, limit, offset)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *ProductoHandler) ObtenerAdmin(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.ObtenerPorID(c.Context(), id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var req dto.CrearProductoRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.Crear(c.Context(), req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ActualizarProductoRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.Actualizar(c.Context(), id, req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *ProductoHandler) Activar(c *fiber.Ctx) error {
	return h.transicion(c, h.useCase.Activar)
}

func (h *ProductoHandler) Desactivar(c *fiber.Ctx) error {
	return h.transicion(c, h.useCase.Desactivar)
}

func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	return h.transicion(c, h.useCase.Eliminar)
}

func (h *ProductoHandler) Restaurar(c *fiber.Ctx) error {
	return h.transicion(c, h.useCase.Restaurar)
}

// EliminarPermanente borra la fila del producto junto con sus variantes e
// imágenes. Si existen pedidos que lo referencian la operación se rechaza.
func (h *ProductoHandler) EliminarPermanente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.useCase.EliminarPermanente(c.Context(), id); err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"mensaje": "producto eliminado permanentemente"})
}

// SincronizarStock recalcula el stock del producto como la suma de sus
// variantes activas y devuelve el valor resultante.
func (h *ProductoHandler) SincronizarStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.SincronizarStock(c.Context(), id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *ProductoHandler) RegistrarImagen(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RegistrarImagenRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.useCase.RegistrarImagen(c.Context(), id, req)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ProductoHandler) ListarImagenes(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.useCase.ListarImagenes(c.Context(), id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *ProductoHandler) EliminarImagen(c *fiber.Ctx) error {
	id, err := parseID(c, "imagenId")
	if err != nil {
		return err
	}
	if err := h.useCase.EliminarImagen(c.Context(), id); err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"mensaje": "imagen eliminada"})
}

// transicion factoriza las cuatro operaciones de ciclo de vida: mismas
// entradas, misma respuesta, solo cambia el caso de uso invocado.
func (h *ProductoHandler) transicion(c *fiber.Ctx, op func(ctx context.Context, id int64) error) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := op(c.Context(), id); err != nil {
		return respError(c, h.log, err)
	}
	resp, err := h.useCase.ObtenerPorID(c.Context(), id)
	if err != nil {
		return respError(c, h.log, err)
	}
	return c.JSON(resp)
}
