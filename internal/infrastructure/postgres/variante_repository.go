package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.VarianteRepository = (*VarianteRepo)(nil)

// VarianteRepo implementación de VarianteRepository sobre PostgreSQL (usable con pool o tx).
type VarianteRepo struct {
	q Querier
}

// NewVarianteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVarianteRepository(q Querier) *VarianteRepo {
	return &VarianteRepo{q: q}
}

// Crear persiste una variante nueva y asigna el ID generado.
func (r *VarianteRepo) Crear(ctx context.Context, v *entity.Variante) error {
	query := `
		INSERT INTO variantes (producto_id, nombre, sku, precio, stock, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.ProductoID, v.Nombre, v.SKU, v.Precio, v.Stock, v.Activo, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variante: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una variante por ID; (nil, nil) si no existe.
func (r *VarianteRepo) ObtenerPorID(ctx context.Context, id int64) (*entity.Variante, error) {
	query := `
		SELECT id, producto_id, nombre, sku, precio, stock, activo, created_at, updated_at
		FROM variantes WHERE id = $1`
	var v entity.Variante
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ProductoID, &v.Nombre, &v.SKU, &v.Precio, &v.Stock, &v.Activo, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variante: %w", err)
	}
	return &v, nil
}

// Actualizar actualiza una variante existente.
func (r *VarianteRepo) Actualizar(ctx context.Context, v *entity.Variante) error {
	query := `
		UPDATE variantes
		SET nombre = $2, precio = $3, stock = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, v.ID, v.Nombre, v.Precio, v.Stock, v.Activo, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update variante: %w", err)
	}
	return nil
}

// Eliminar borra una variante; false si no existía.
func (r *VarianteRepo) Eliminar(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM variantes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete variante: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListarPorProducto lista las variantes de un producto.
func (r *VarianteRepo) ListarPorProducto(ctx context.Context, productoID int64) ([]*entity.Variante, error) {
	query := `
		SELECT id, producto_id, nombre, sku, precio, stock, activo, created_at, updated_at
		FROM variantes WHERE producto_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, productoID)
	if err != nil {
		return nil, fmt.Errorf("listar variantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variante
	for rows.Next() {
		var v entity.Variante
		if err := rows.Scan(&v.ID, &v.ProductoID, &v.Nombre, &v.SKU, &v.Precio, &v.Stock, &v.Activo, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variante: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// SumarStockActivo suma el stock de las variantes activas del producto; 0 sin variantes.
func (r *VarianteRepo) SumarStockActivo(ctx context.Context, productoID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(stock), 0) FROM variantes WHERE producto_id = $1 AND activo = true`,
		productoID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sumar stock activo: %w", err)
	}
	return total, nil
}

// EliminarPorProducto borra todas las variantes del producto.
func (r *VarianteRepo) EliminarPorProducto(ctx context.Context, productoID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM variantes WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete variantes por producto: %w", err)
	}
	return nil
}
