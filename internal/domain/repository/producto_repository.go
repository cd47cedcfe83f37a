package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
//
// Las transiciones de ciclo de vida (Activar, Desactivar, EliminarSoft,
// Restaurar) son UPDATEs condicionados: la precondición de estado va en el
// WHERE y el booleano de retorno indica si alguna fila coincidió. Fila
// ausente y precondición no cumplida son indistinguibles a este nivel;
// ambos se reportan como false.
type ProductoRepository interface {
	Crear(ctx context.Context, p *entity.Producto) error
	ObtenerPorID(ctx context.Context, id int64) (*entity.Producto, error)
	ObtenerPorSlug(ctx context.Context, slug string) (*entity.Producto, error)
	Actualizar(ctx context.Context, p *entity.Producto) error
	ListarPublico(ctx context.Context, limit, offset int) ([]*entity.Producto, error)
	ListarAdmin(ctx context.Context, incluirEliminados bool, limit, offset int) ([]*entity.Producto, error)

	Activar(ctx context.Context, id int64) (bool, error)
	Desactivar(ctx context.Context, id int64) (bool, error)
	EliminarSoft(ctx context.Context, id int64) (bool, error)
	Restaurar(ctx context.Context, id int64) (bool, error)
	EliminarFila(ctx context.Context, id int64) error

	ActualizarStock(ctx context.Context, id int64, stock int) (bool, error)
	Contar(ctx context.Context) (int, error)
	ListarBajoStock(ctx context.Context, umbral, limit int) ([]*entity.Producto, error)
}
