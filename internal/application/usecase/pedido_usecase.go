package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// PedidoUseCase creación y consulta de pedidos, más el pago simulado.
// La creación corre en una transacción: pedido y líneas se insertan juntos o
// no se inserta nada.
type PedidoUseCase struct {
	repo repository.PedidoRepository
	tx   TxRunner
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, tx TxRunner) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, tx: tx}
}

// Crear arma el pedido congelando nombre y precio de cada línea al momento de
// la compra. Solo admite productos en estado activo.
func (uc *PedidoUseCase) Crear(ctx context.Context, usuarioID int64, in dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	pedido := &entity.Pedido{
		Numero:    numeroPedido(),
		UsuarioID: usuarioID,
		Estado:    entity.PedidoPendiente,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		variantes repository.VarianteRepository,
		pedidos repository.PedidoRepository,
		_ repository.ImagenRepository,
	) error {
		for _, item := range in.Items {
			if item.Cantidad <= 0 {
				return domain.ErrInvalidInput
			}
			producto, err := productos.ObtenerPorID(ctx, item.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil || producto.Estado != entity.EstadoActivo {
				return domain.ErrNotFound
			}
			nombre := producto.Nombre
			precio := producto.Precio
			if item.VarianteID != nil {
				variante, err := variantes.ObtenerPorID(ctx, *item.VarianteID)
				if err != nil {
					return err
				}
				if variante == nil || variante.ProductoID != producto.ID || !variante.Activo {
					return domain.ErrNotFound
				}
				nombre = producto.Nombre + " / " + variante.Nombre
				if variante.Precio.GreaterThan(decimal.Zero) {
					precio = variante.Precio
				}
			}
			pedido.Items = append(pedido.Items, entity.PedidoItem{
				ProductoID: item.ProductoID,
				VarianteID: item.VarianteID,
				Nombre:     nombre,
				Precio:     precio,
				Cantidad:   item.Cantidad,
			})
			pedido.Total = pedido.Total.Add(precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
		}
		return pedidos.Crear(ctx, pedido)
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// ObtenerPorID obtiene un pedido. Los clientes solo ven los propios; un admin
// puede ver cualquiera.
func (uc *PedidoUseCase) ObtenerPorID(ctx context.Context, principal entity.Principal, id int64) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if pedido.UsuarioID != principal.ID && !principal.EsAdmin() {
		return nil, domain.ErrForbidden
	}
	return toPedidoResponse(pedido), nil
}

// ListarMios lista los pedidos del usuario autenticado.
func (uc *PedidoUseCase) ListarMios(ctx context.Context, usuarioID int64, limit, offset int) (*dto.PedidoListResponse, error) {
	list, err := uc.repo.ListarPorUsuario(ctx, usuarioID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPedidoList(list, limit, offset), nil
}

// ListarTodos lista todos los pedidos (vista admin).
func (uc *PedidoUseCase) ListarTodos(ctx context.Context, limit, offset int) (*dto.PedidoListResponse, error) {
	list, err := uc.repo.ListarTodos(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPedidoList(list, limit, offset), nil
}

// Pagar pasa el pedido de pendiente a pagado contra la pasarela simulada, que
// siempre aprueba. ErrConflict si el pedido no está pendiente.
func (uc *PedidoUseCase) Pagar(ctx context.Context, principal entity.Principal, id int64) (*dto.PagoResponse, error) {
	pedido, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if pedido.UsuarioID != principal.ID && !principal.EsAdmin() {
		return nil, domain.ErrForbidden
	}
	if pedido.Estado != entity.PedidoPendiente {
		return nil, domain.ErrConflict
	}
	ok, err := uc.repo.ActualizarEstado(ctx, id, entity.PedidoPagado)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &dto.PagoResponse{
		PedidoID:   id,
		Estado:     entity.PedidoPagado,
		Referencia: "SIM-" + strings.ToUpper(uuid.New().String()[:8]),
	}, nil
}

func numeroPedido() string {
	return "PED-" + strings.Split(uuid.New().String(), "-")[0]
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PedidoItemResponse{
			ProductoID: it.ProductoID,
			VarianteID: it.VarianteID,
			Nombre:     it.Nombre,
			Precio:     it.Precio,
			Cantidad:   it.Cantidad,
		})
	}
	return &dto.PedidoResponse{
		ID:        p.ID,
		Numero:    p.Numero,
		UsuarioID: p.UsuarioID,
		Estado:    p.Estado,
		Total:     p.Total,
		Items:     items,
		CreatedAt: p.CreatedAt,
	}
}

func toPedidoList(list []*entity.Pedido, limit, offset int) *dto.PedidoListResponse {
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPedidoResponse(p))
	}
	return &dto.PedidoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
