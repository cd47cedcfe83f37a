package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ImagenRepository define el puerto de persistencia para Imagen (DIP).
// Solo metadatos; el binario vive en un almacenamiento externo.
type ImagenRepository interface {
	Crear(ctx context.Context, img *entity.Imagen) error
	ListarPorProducto(ctx context.Context, productoID int64) ([]*entity.Imagen, error)
	Eliminar(ctx context.Context, id int64) (bool, error)
	EliminarPorProducto(ctx context.Context, productoID int64) error
}
