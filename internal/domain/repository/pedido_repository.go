package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	Crear(ctx context.Context, p *entity.Pedido) error
	ObtenerPorID(ctx context.Context, id int64) (*entity.Pedido, error)
	ListarPorUsuario(ctx context.Context, usuarioID int64, limit, offset int) ([]*entity.Pedido, error)
	ListarTodos(ctx context.Context, limit, offset int) ([]*entity.Pedido, error)
	ActualizarEstado(ctx context.Context, id int64, estado string) (bool, error)

	// ExistePorProducto verifica si algún ítem de pedido referencia al
	// producto. Es la guarda de la eliminación permanente.
	ExistePorProducto(ctx context.Context, productoID int64) (bool, error)
	Contar(ctx context.Context) (int, error)
}
