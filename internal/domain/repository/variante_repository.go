package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// VarianteRepository define el puerto de persistencia para Variante (DIP).
type VarianteRepository interface {
	Crear(ctx context.Context, v *entity.Variante) error
	ObtenerPorID(ctx context.Context, id int64) (*entity.Variante, error)
	Actualizar(ctx context.Context, v *entity.Variante) error
	Eliminar(ctx context.Context, id int64) (bool, error)
	ListarPorProducto(ctx context.Context, productoID int64) ([]*entity.Variante, error)

	// SumarStockActivo devuelve la suma del stock de las variantes activas
	// del producto; 0 cuando no hay ninguna.
	SumarStockActivo(ctx context.Context, productoID int64) (int, error)
	EliminarPorProducto(ctx context.Context, productoID int64) error
}
