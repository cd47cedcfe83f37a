package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository sobre PostgreSQL (usable con pool o tx).
// Crear inserta cabecera y líneas con el mismo Querier; para atomicidad debe
// invocarse con un Querier transaccional (vía TxRunner).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Crear persiste el pedido y sus líneas, asignando los IDs generados.
func (r *PedidoRepo) Crear(ctx context.Context, p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (numero, usuario_id, estado, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Numero, p.UsuarioID, p.Estado, p.Total, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	for i := range p.Items {
		item := &p.Items[i]
		item.PedidoID = p.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO pedido_items (pedido_id, producto_id, variante_id, nombre, precio, cantidad)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.PedidoID, item.ProductoID, item.VarianteID, item.Nombre, item.Precio, item.Cantidad,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert pedido item: %w", err)
		}
	}
	return nil
}

// ObtenerPorID obtiene un pedido con sus líneas; (nil, nil) si no existe.
func (r *PedidoRepo) ObtenerPorID(ctx context.Context, id int64) (*entity.Pedido, error) {
	query := `
		SELECT id, numero, usuario_id, estado, total, created_at, updated_at
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Numero, &p.UsuarioID, &p.Estado, &p.Total, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	items, err := r.listarItems(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// ListarPorUsuario lista los pedidos de un usuario (sin líneas; listado resumen).
func (r *PedidoRepo) ListarPorUsuario(ctx context.Context, usuarioID int64, limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT id, numero, usuario_id, estado, total, created_at, updated_at
		FROM pedidos WHERE usuario_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.listar(ctx, query, usuarioID, limit, offset)
}

// ListarTodos lista todos los pedidos (vista admin, sin líneas).
func (r *PedidoRepo) ListarTodos(ctx context.Context, limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT id, numero, usuario_id, estado, total, created_at, updated_at
		FROM pedidos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listar(ctx, query, limit, offset)
}

// ActualizarEstado cambia el estado del pedido; false si la fila no existe.
func (r *PedidoRepo) ActualizarEstado(ctx context.Context, id int64, estado string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE pedidos SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return false, fmt.Errorf("actualizar estado pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ExistePorProducto verifica si algún ítem de pedido referencia al producto.
func (r *PedidoRepo) ExistePorProducto(ctx context.Context, productoID int64) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pedido_items WHERE producto_id = $1)`,
		productoID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe pedido por producto: %w", err)
	}
	return existe, nil
}

// Contar devuelve el total de pedidos.
func (r *PedidoRepo) Contar(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM pedidos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar pedidos: %w", err)
	}
	return n, nil
}

func (r *PedidoRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.Numero, &p.UsuarioID, &p.Estado, &p.Total, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PedidoRepo) listarItems(ctx context.Context, pedidoID int64) ([]entity.PedidoItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, pedido_id, producto_id, variante_id, nombre, precio, cantidad
		FROM pedido_items WHERE pedido_id = $1 ORDER BY id`, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("listar items de pedido: %w", err)
	}
	defer rows.Close()
	var items []entity.PedidoItem
	for rows.Next() {
		var it entity.PedidoItem
		if err := rows.Scan(&it.ID, &it.PedidoID, &it.ProductoID, &it.VarianteID, &it.Nombre, &it.Precio, &it.Cantidad); err != nil {
			return nil, fmt.Errorf("scan pedido item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
