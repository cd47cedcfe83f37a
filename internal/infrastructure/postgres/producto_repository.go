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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumnas = `id, nombre, slug, descripcion, precio, stock, activo, eliminado, destacado, categoria_id, created_at, updated_at`

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
// El estado de dominio se proyecta a los dos flags activo/eliminado de la tabla;
// las transiciones son UPDATEs condicionados cuyo WHERE codifica la precondición.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Crear persiste un producto nuevo y asigna el ID generado.
func (r *ProductoRepo) Crear(ctx context.Context, p *entity.Producto) error {
	activo, eliminado := p.Estado.Flags()
	query := `
		INSERT INTO productos (nombre, slug, descripcion, precio, stock, activo, eliminado, destacado, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Slug, p.Descripcion, p.Precio, p.Stock, activo, eliminado,
		p.Destacado, p.CategoriaID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un producto por ID en cualquier estado; (nil, nil) si la fila no existe.
func (r *ProductoRepo) ObtenerPorID(ctx context.Context, id int64) (*entity.Producto, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productoColumnas+` FROM productos WHERE id = $1`, id)
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ObtenerPorSlug obtiene un producto por slug; (nil, nil) si no existe.
func (r *ProductoRepo) ObtenerPorSlug(ctx context.Context, slug string) (*entity.Producto, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productoColumnas+` FROM productos WHERE slug = $1`, slug)
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por slug: %w", err)
	}
	return p, nil
}

// Actualizar actualiza los campos descriptivos. Ni el stock ni los flags de
// estado se tocan aquí: tienen sus propias operaciones.
func (r *ProductoRepo) Actualizar(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, destacado = $5, categoria_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.Destacado, p.CategoriaID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// ListarPublico lista productos activos no eliminados (catálogo de la tienda).
func (r *ProductoRepo) ListarPublico(ctx context.Context, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumnas + `
		FROM productos
		WHERE activo = true AND eliminado = false
		ORDER BY destacado DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	return r.listar(ctx, query, limit, offset)
}

// ListarAdmin lista todos los productos; incluirEliminados añade los soft-deleted.
func (r *ProductoRepo) ListarAdmin(ctx context.Context, incluirEliminados bool, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumnas + `
		FROM productos
		WHERE ($1 OR eliminado = false)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.listar(ctx, query, incluirEliminados, limit, offset)
}

// Activar transición inactivo|eliminado → activo. false si ninguna fila coincide
// (ausente o ya activa).
func (r *ProductoRepo) Activar(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE productos
		SET activo = true, eliminado = false, updated_at = now()
		WHERE id = $1 AND (activo = false OR eliminado = true)`, id)
	if err != nil {
		return false, fmt.Errorf("activar producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Desactivar transición activo → inactivo.
func (r *ProductoRepo) Desactivar(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE productos
		SET activo = false, updated_at = now()
		WHERE id = $1 AND activo = true AND eliminado = false`, id)
	if err != nil {
		return false, fmt.Errorf("desactivar producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// EliminarSoft transición activo|inactivo → eliminado.
func (r *ProductoRepo) EliminarSoft(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE productos
		SET eliminado = true, activo = false, updated_at = now()
		WHERE id = $1 AND eliminado = false`, id)
	if err != nil {
		return false, fmt.Errorf("eliminar producto (soft): %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Restaurar transición eliminado → inactivo. El producto queda oculto hasta
// una activación explícita.
func (r *ProductoRepo) Restaurar(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE productos
		SET eliminado = false, activo = false, updated_at = now()
		WHERE id = $1 AND eliminado = true`, id)
	if err != nil {
		return false, fmt.Errorf("restaurar producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// EliminarFila borra la fila definitivamente. Si el FK de pedido_items la
// protege, devuelve ErrPedidosAsociados.
func (r *ProductoRepo) EliminarFila(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPedidosAsociados
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// ActualizarStock escribe el stock agregado; false si la fila no existe.
func (r *ProductoRepo) ActualizarStock(ctx context.Context, id int64, stock int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return false, fmt.Errorf("actualizar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Contar devuelve el total de productos no eliminados.
func (r *ProductoRepo) Contar(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM productos WHERE eliminado = false`).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	return n, nil
}

// ListarBajoStock lista productos no eliminados con stock bajo el umbral.
func (r *ProductoRepo) ListarBajoStock(ctx context.Context, umbral, limit int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumnas + `
		FROM productos
		WHERE eliminado = false AND stock < $1
		ORDER BY stock ASC, nombre ASC
		LIMIT $2`
	return r.listar(ctx, query, umbral, limit)
}

func (r *ProductoRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var activo, eliminado bool
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Slug, &p.Descripcion, &p.Precio, &p.Stock,
		&activo, &eliminado, &p.Destacado, &p.CategoriaID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Estado = entity.EstadoDesdeFlags(activo, eliminado)
	return &p, nil
}
