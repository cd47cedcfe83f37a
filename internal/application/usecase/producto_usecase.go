package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productos repository.ProductoRepository,
		variantes repository.VarianteRepository,
		pedidos repository.PedidoRepository,
		imagenes repository.ImagenRepository,
	) error) error
}

// ProductoUseCase ciclo de vida y CRUD de productos.
//
// Estados: activo / inactivo / eliminado (soft) / fila ausente. Las
// transiciones van por UPDATEs condicionados en el repositorio; la eliminación
// permanente y la sincronización de stock corren dentro de una transacción.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	imagenes repository.ImagenRepository
	tx       TxRunner
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, imagenes repository.ImagenRepository, tx TxRunner) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, imagenes: imagenes, tx: tx}
}

// Crear crea un producto en estado inactivo y con stock 0. Devuelve
// ErrDuplicate si el slug ya existe.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	existing, err := uc.repo.ObtenerPorSlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		Nombre:      in.Nombre,
		Slug:        in.Slug,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       0,
		Estado:      entity.EstadoInactivo,
		Destacado:   in.Destacado,
		CategoriaID: in.CategoriaID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Crear(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ObtenerPorID obtiene un producto por ID (vista admin: cualquier estado).
func (uc *ProductoUseCase) ObtenerPorID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// ObtenerPublico obtiene un producto visible en la tienda: solo estado activo.
func (uc *ProductoUseCase) ObtenerPublico(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil || producto.Estado != entity.EstadoActivo {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Actualizar actualiza campos descriptivos. Stock no se toca aquí: es un
// agregado derivado de las variantes.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = *in.CategoriaID
	}
	if in.Destacado != nil {
		producto.Destacado = *in.Destacado
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Actualizar(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ListarPublico lista productos activos (catálogo de la tienda).
func (uc *ProductoUseCase) ListarPublico(ctx context.Context, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.ListarPublico(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductoList(list, limit, offset), nil
}

// ListarAdmin lista todos los productos, opcionalmente incluyendo eliminados.
func (uc *ProductoUseCase) ListarAdmin(ctx context.Context, incluirEliminados bool, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.ListarAdmin(ctx, incluirEliminados, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductoList(list, limit, offset), nil
}

// Activar transición inactivo|eliminado → activo. ErrNotFound si la fila no
// existe o ya está activa (el UPDATE condicionado no coincide en ambos casos).
func (uc *ProductoUseCase) Activar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Activar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Desactivar transición activo → inactivo (ocultar de la tienda).
func (uc *ProductoUseCase) Desactivar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Desactivar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Eliminar soft-delete: activo|inactivo → eliminado. Recuperable con Restaurar.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id int64) error {
	ok, err := uc.repo.EliminarSoft(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Restaurar transición eliminado → inactivo. Restaurar no re-activa: el
// producto vuelve recuperado pero oculto hasta una activación explícita.
func (uc *ProductoUseCase) Restaurar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Restaurar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// EliminarPermanente borra la fila y sus imágenes y variantes. El chequeo de
// pedidos asociados y el borrado corren en la misma transacción: un pedido
// creado en paralelo hace rollback en vez de colarse entre chequeo y delete
// (el FK de pedido_items respalda además el chequeo).
func (uc *ProductoUseCase) EliminarPermanente(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		variantes repository.VarianteRepository,
		pedidos repository.PedidoRepository,
		imagenes repository.ImagenRepository,
	) error {
		producto, err := productos.ObtenerPorID(ctx, id)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		tiene, err := pedidos.ExistePorProducto(ctx, id)
		if err != nil {
			return err
		}
		if tiene {
			return domain.ErrPedidosAsociados
		}
		if err := imagenes.EliminarPorProducto(ctx, id); err != nil {
			return err
		}
		if err := variantes.EliminarPorProducto(ctx, id); err != nil {
			return err
		}
		return productos.EliminarFila(ctx, id)
	})
}

// SincronizarStock recalcula el stock agregado del producto como la suma del
// stock de sus variantes activas (0 sin variantes) y lo escribe. Idempotente:
// repetirla sin cambios de variantes no altera nada. No se dispara sola en
// cada escritura de variante; es una operación de consistencia bajo demanda.
func (uc *ProductoUseCase) SincronizarStock(ctx context.Context, id int64) (*dto.StockSincronizadoResponse, error) {
	var out dto.StockSincronizadoResponse
	err := uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		variantes repository.VarianteRepository,
		_ repository.PedidoRepository,
		_ repository.ImagenRepository,
	) error {
		total, err := variantes.SumarStockActivo(ctx, id)
		if err != nil {
			return err
		}
		ok, err := productos.ActualizarStock(ctx, id, total)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		out = dto.StockSincronizadoResponse{ProductoID: id, Stock: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegistrarImagen asocia una imagen ya subida al storage externo. La clave del
// objeto se genera aquí; el binario no pasa por este servicio.
func (uc *ProductoUseCase) RegistrarImagen(ctx context.Context, productoID int64, in dto.RegistrarImagenRequest) (*dto.ImagenResponse, error) {
	producto, err := uc.repo.ObtenerPorID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	img := &entity.Imagen{
		ProductoID: productoID,
		Clave:      uuid.New().String(),
		URL:        in.URL,
		Principal:  in.Principal,
		CreatedAt:  time.Now(),
	}
	if err := uc.imagenes.Crear(ctx, img); err != nil {
		return nil, err
	}
	return toImagenResponse(img), nil
}

// ListarImagenes lista las imágenes de un producto.
func (uc *ProductoUseCase) ListarImagenes(ctx context.Context, productoID int64) ([]dto.ImagenResponse, error) {
	list, err := uc.imagenes.ListarPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ImagenResponse, 0, len(list))
	for _, img := range list {
		items = append(items, *toImagenResponse(img))
	}
	return items, nil
}

// EliminarImagen borra el registro de una imagen.
func (uc *ProductoUseCase) EliminarImagen(ctx context.Context, id int64) error {
	ok, err := uc.imagenes.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toImagenResponse(img *entity.Imagen) *dto.ImagenResponse {
	if img == nil {
		return nil
	}
	return &dto.ImagenResponse{
		ID:         img.ID,
		ProductoID: img.ProductoID,
		Clave:      img.Clave,
		URL:        img.URL,
		Principal:  img.Principal,
	}
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Slug:        p.Slug,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Estado:      string(p.Estado),
		Destacado:   p.Destacado,
		CategoriaID: p.CategoriaID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductoList(list []*entity.Producto, limit, offset int) *dto.ProductoListResponse {
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
