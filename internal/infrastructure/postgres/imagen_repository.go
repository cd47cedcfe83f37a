package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ImagenRepository = (*ImagenRepo)(nil)

// ImagenRepo implementación de ImagenRepository sobre PostgreSQL (usable con pool o tx).
type ImagenRepo struct {
	q Querier
}

// NewImagenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImagenRepository(q Querier) *ImagenRepo {
	return &ImagenRepo{q: q}
}

// Crear registra los metadatos de una imagen y asigna el ID generado.
func (r *ImagenRepo) Crear(ctx context.Context, img *entity.Imagen) error {
	query := `
		INSERT INTO imagenes (producto_id, clave, url, principal, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		img.ProductoID, img.Clave, img.URL, img.Principal, img.CreatedAt,
	).Scan(&img.ID)
	if err != nil {
		return fmt.Errorf("insert imagen: %w", err)
	}
	return nil
}

// ListarPorProducto lista las imágenes de un producto.
func (r *ImagenRepo) ListarPorProducto(ctx context.Context, productoID int64) ([]*entity.Imagen, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, producto_id, clave, url, principal, created_at
		FROM imagenes WHERE producto_id = $1 ORDER BY principal DESC, id`, productoID)
	if err != nil {
		return nil, fmt.Errorf("listar imagenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Imagen
	for rows.Next() {
		var img entity.Imagen
		if err := rows.Scan(&img.ID, &img.ProductoID, &img.Clave, &img.URL, &img.Principal, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan imagen: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// Eliminar borra una imagen; false si no existía.
func (r *ImagenRepo) Eliminar(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM imagenes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete imagen: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// EliminarPorProducto borra todas las imágenes del producto.
func (r *ImagenRepo) EliminarPorProducto(ctx context.Context, productoID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM imagenes WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete imagenes por producto: %w", err)
	}
	return nil
}
