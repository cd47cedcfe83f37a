package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductoRepo replica la semántica de los UPDATEs condicionados del
// repositorio real: la precondición de estado decide si la operación coincide.
type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
	nextID    int64
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[int64]*entity.Producto), nextID: 1}
}

func (r *fakeProductoRepo) Crear(_ context.Context, p *entity.Producto) error {
	p.ID = r.nextID
	r.nextID++
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) ObtenerPorID(_ context.Context, id int64) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductoRepo) ObtenerPorSlug(_ context.Context, slug string) (*entity.Producto, error) {
	for _, p := range r.productos {
		if p.Slug == slug {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) Actualizar(_ context.Context, p *entity.Producto) error {
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) ListarPublico(_ context.Context, _, _ int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Estado == entity.EstadoActivo {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) ListarAdmin(_ context.Context, incluirEliminados bool, _, _ int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if !incluirEliminados && p.Estado == entity.EstadoEliminado {
			continue
		}
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeProductoRepo) transicion(id int64, cond func(entity.EstadoProducto) bool, destino entity.EstadoProducto) (bool, error) {
	p, ok := r.productos[id]
	if !ok || !cond(p.Estado) {
		return false, nil
	}
	p.Estado = destino
	return true, nil
}

func (r *fakeProductoRepo) Activar(_ context.Context, id int64) (bool, error) {
	return r.transicion(id, func(e entity.EstadoProducto) bool { return e != entity.EstadoActivo }, entity.EstadoActivo)
}

func (r *fakeProductoRepo) Desactivar(_ context.Context, id int64) (bool, error) {
	return r.transicion(id, func(e entity.EstadoProducto) bool { return e == entity.EstadoActivo }, entity.EstadoInactivo)
}

func (r *fakeProductoRepo) EliminarSoft(_ context.Context, id int64) (bool, error) {
	return r.transicion(id, func(e entity.EstadoProducto) bool { return e != entity.EstadoEliminado }, entity.EstadoEliminado)
}

func (r *fakeProductoRepo) Restaurar(_ context.Context, id int64) (bool, error) {
	return r.transicion(id, func(e entity.EstadoProducto) bool { return e == entity.EstadoEliminado }, entity.EstadoInactivo)
}

func (r *fakeProductoRepo) EliminarFila(_ context.Context, id int64) error {
	delete(r.productos, id)
	return nil
}

func (r *fakeProductoRepo) ActualizarStock(_ context.Context, id int64, stock int) (bool, error) {
	p, ok := r.productos[id]
	if !ok {
		return false, nil
	}
	p.Stock = stock
	return true, nil
}

func (r *fakeProductoRepo) Contar(_ context.Context) (int, error) { return len(r.productos), nil }

func (r *fakeProductoRepo) ListarBajoStock(_ context.Context, _, _ int) ([]*entity.Producto, error) {
	return nil, nil
}

type fakeVarianteRepo struct {
	variantes map[int64]*entity.Variante
	nextID    int64
}

func newFakeVarianteRepo() *fakeVarianteRepo {
	return &fakeVarianteRepo{variantes: make(map[int64]*entity.Variante), nextID: 1}
}

func (r *fakeVarianteRepo) Crear(_ context.Context, v *entity.Variante) error {
	v.ID = r.nextID
	r.nextID++
	copia := *v
	r.variantes[v.ID] = &copia
	return nil
}

func (r *fakeVarianteRepo) ObtenerPorID(_ context.Context, id int64) (*entity.Variante, error) {
	v, ok := r.variantes[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (r *fakeVarianteRepo) Actualizar(_ context.Context, v *entity.Variante) error {
	copia := *v
	r.variantes[v.ID] = &copia
	return nil
}

func (r *fakeVarianteRepo) Eliminar(_ context.Context, id int64) (bool, error) {
	if _, ok := r.variantes[id]; !ok {
		return false, nil
	}
	delete(r.variantes, id)
	return true, nil
}

func (r *fakeVarianteRepo) ListarPorProducto(_ context.Context, productoID int64) ([]*entity.Variante, error) {
	var out []*entity.Variante
	for _, v := range r.variantes {
		if v.ProductoID == productoID {
			copia := *v
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeVarianteRepo) SumarStockActivo(_ context.Context, productoID int64) (int, error) {
	total := 0
	for _, v := range r.variantes {
		if v.ProductoID == productoID && v.Activo {
			total += v.Stock
		}
	}
	return total, nil
}

func (r *fakeVarianteRepo) EliminarPorProducto(_ context.Context, productoID int64) error {
	for id, v := range r.variantes {
		if v.ProductoID == productoID {
			delete(r.variantes, id)
		}
	}
	return nil
}

type fakePedidoRepo struct {
	repository.PedidoRepository
	conPedidos map[int64]bool // producto_id → tiene pedidos
}

func (r *fakePedidoRepo) ExistePorProducto(_ context.Context, productoID int64) (bool, error) {
	return r.conPedidos[productoID], nil
}

type fakeImagenRepo struct {
	imagenes map[int64]*entity.Imagen
	nextID   int64
}

func newFakeImagenRepo() *fakeImagenRepo {
	return &fakeImagenRepo{imagenes: make(map[int64]*entity.Imagen), nextID: 1}
}

func (r *fakeImagenRepo) Crear(_ context.Context, img *entity.Imagen) error {
	img.ID = r.nextID
	r.nextID++
	copia := *img
	r.imagenes[img.ID] = &copia
	return nil
}

func (r *fakeImagenRepo) ListarPorProducto(_ context.Context, productoID int64) ([]*entity.Imagen, error) {
	var out []*entity.Imagen
	for _, img := range r.imagenes {
		if img.ProductoID == productoID {
			copia := *img
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeImagenRepo) Eliminar(_ context.Context, id int64) (bool, error) {
	if _, ok := r.imagenes[id]; !ok {
		return false, nil
	}
	delete(r.imagenes, id)
	return true, nil
}

func (r *fakeImagenRepo) EliminarPorProducto(_ context.Context, productoID int64) error {
	for id, img := range r.imagenes {
		if img.ProductoID == productoID {
			delete(r.imagenes, id)
		}
	}
	return nil
}

// fakeTxRunner pasa los mismos fakes a fn; los fakes mutan en memoria así que
// no hay rollback, suficiente para probar la lógica del caso de uso.
type fakeTxRunner struct {
	productos *fakeProductoRepo
	variantes *fakeVarianteRepo
	pedidos   *fakePedidoRepo
	imagenes  *fakeImagenRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productos repository.ProductoRepository,
	variantes repository.VarianteRepository,
	pedidos repository.PedidoRepository,
	imagenes repository.ImagenRepository,
) error) error {
	return fn(t.productos, t.variantes, t.pedidos, t.imagenes)
}

// armarUseCase construye el caso de uso con todos los fakes compartidos.
func armarUseCase() (*usecase.ProductoUseCase, *fakeProductoRepo, *fakeVarianteRepo, *fakePedidoRepo, *fakeImagenRepo) {
	productos := newFakeProductoRepo()
	variantes := newFakeVarianteRepo()
	pedidos := &fakePedidoRepo{conPedidos: make(map[int64]bool)}
	imagenes := newFakeImagenRepo()
	tx := &fakeTxRunner{productos: productos, variantes: variantes, pedidos: pedidos, imagenes: imagenes}
	return usecase.NewProductoUseCase(productos, imagenes, tx), productos, variantes, pedidos, imagenes
}

func sembrarProducto(t *testing.T, productos *fakeProductoRepo, estado entity.EstadoProducto) int64 {
	t.Helper()
	p := &entity.Producto{
		Nombre: "Camiseta",
		Slug:   "camiseta",
		Precio: decimal.NewFromInt(50000),
		Estado: estado,
	}
	require.NoError(t, productos.Crear(context.Background(), p))
	return p.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_NaceInactivoConStockCero(t *testing.T) {
	uc, _, _, _, _ := armarUseCase()

	resp, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Camiseta",
		Slug:   "camiseta",
		Precio: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.EstadoInactivo), resp.Estado,
		"todo producto nace oculto hasta activarlo explícitamente")
	assert.Equal(t, 0, resp.Stock)
}

func TestCrear_SlugDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, productos, _, _, _ := armarUseCase()
	sembrarProducto(t, productos, entity.EstadoInactivo)

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Otra camiseta",
		Slug:   "camiseta",
		Precio: decimal.NewFromInt(40000),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCrear_PrecioNegativo_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _, _, _ := armarUseCase()

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Camiseta",
		Slug:   "camiseta",
		Precio: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloDeVida_EliminarRestaurarActivar(t *testing.T) {
	uc, productos, _, _, _ := armarUseCase()
	ctx := context.Background()
	id := sembrarProducto(t, productos, entity.EstadoActivo)

	require.NoError(t, uc.Eliminar(ctx, id))
	p, _ := productos.ObtenerPorID(ctx, id)
	assert.Equal(t, entity.EstadoEliminado, p.Estado)

	// Restaurar recupera pero no re-activa.
	require.NoError(t, uc.Restaurar(ctx, id))
	p, _ = productos.ObtenerPorID(ctx, id)
	assert.Equal(t, entity.EstadoInactivo, p.Estado,
		"restaurar debe dejar el producto oculto, no publicado")

	require.NoError(t, uc.Activar(ctx, id))
	p, _ = productos.ObtenerPorID(ctx, id)
	assert.Equal(t, entity.EstadoActivo, p.Estado)
}

func TestActivar_YaActivo_RetornaErrNotFound(t *testing.T) {
	uc, productos, _, _, _ := armarUseCase()
	id := sembrarProducto(t, productos, entity.EstadoActivo)

	err := uc.Activar(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestaurar_NoEliminado_RetornaErrNotFound(t *testing.T) {
	uc, productos, _, _, _ := armarUseCase()
	id := sembrarProducto(t, productos, entity.EstadoActivo)

	err := uc.Restaurar(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDesactivar_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _, _ := armarUseCase()

	err := uc.Desactivar(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObtenerPublico_InactivoOEliminado_RetornaErrNotFound(t *testing.T) {
	uc, productos, _, _, _ := armarUseCase()
	ctx := context.Background()
	inactivo := sembrarProducto(t, productos, entity.EstadoInactivo)

	_, err := uc.ObtenerPublico(ctx, inactivo)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"la vitrina no debe distinguir inactivo de inexistente")

	_, err = uc.ObtenerPublico(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación permanente
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarPermanente_ConPedidos_Rechaza(t *testing.T) {
	uc, productos, _, pedidos, _ := armarUseCase()
	ctx := context.Background()
	id := sembrarProducto(t, productos, entity.EstadoEliminado)
	pedidos.conPedidos[id] = true

	err := uc.EliminarPermanente(ctx, id)
	assert.ErrorIs(t, err, domain.ErrPedidosAsociados)

	p, _ := productos.ObtenerPorID(ctx, id)
	assert.NotNil(t, p, "la fila debe sobrevivir cuando hay pedidos asociados")
}

func TestEliminarPermanente_SinPedidos_BorraFilaVariantesEImagenes(t *testing.T) {
	uc, productos, variantes, _, imagenes := armarUseCase()
	ctx := context.Background()
	id := sembrarProducto(t, productos, entity.EstadoEliminado)
	require.NoError(t, variantes.Crear(ctx, &entity.Variante{ProductoID: id, Nombre: "Talla M", Stock: 3, Activo: true}))
	require.NoError(t, imagenes.Crear(ctx, &entity.Imagen{ProductoID: id, URL: "https://cdn.test/1.jpg"}))

	require.NoError(t, uc.EliminarPermanente(ctx, id))

	p, _ := productos.ObtenerPorID(ctx, id)
	assert.Nil(t, p)
	vs, _ := variantes.ListarPorProducto(ctx, id)
	assert.Empty(t, vs)
	imgs, _ := imagenes.ListarPorProducto(ctx, id)
	assert.Empty(t, imgs)
}

func TestEliminarPermanente_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _, _ := armarUseCase()

	err := uc.EliminarPermanente(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronización de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestSincronizarStock_SumaSoloVariantesActivas(t *testing.T) {
	uc, productos, variantes, _, _ := armarUseCase()
	ctx := context.Background()
	id := sembrarProducto(t, productos, entity.EstadoActivo)
	require.NoError(t, variantes.Crear(ctx, &entity.Variante{ProductoID: id, Nombre: "Talla S", Stock: 5, Activo: true}))
	require.NoError(t, variantes.Crear(ctx, &entity.Variante{ProductoID: id, Nombre: "Talla M", Stock: 2, Activo: true}))
	require.NoError(t, variantes.Crear(ctx, &entity.Variante{ProductoID: id, Nombre: "Talla L", Stock: 3, Activo: false}))

	resp, err := uc.SincronizarStock(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Stock, "las variantes inactivas no cuentan")
	p, _ := productos.ObtenerPorID(ctx, id)
	assert.Equal(t, 7, p.Stock)
}

func TestSincronizarStock_EsIdempotente(t *testing.T) {
	uc, productos, variantes, _, _ := armarUseCase()
	ctx := context.Background()
	id := sembrarProducto(t, productos, entity.EstadoActivo)
	require.NoError(t, variantes.Crear(ctx, &entity.Variante{ProductoID: id, Nombre: "Talla S", Stock: 4, Activo: true}))

	primero, err := uc.SincronizarStock(ctx, id)
	require.NoError(t, err)
	segundo, err := uc.SincronizarStock(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, primero.Stock, segundo.Stock)
	p, _ := productos.ObtenerPorID(ctx, id)
	assert.Equal(t, 4, p.Stock)
}

func TestSincronizarStock_SinVariantes_DejaCero(t *testing.T) {
	uc, productos, _, _, _ := armarUseCase()
	ctx := context.Background()
	id := sembrarProducto(t, productos, entity.EstadoActivo)
	// Stock desincronizado a propósito.
	_, err := productos.ActualizarStock(ctx, id, 10)
	require.NoError(t, err)

	resp, err := uc.SincronizarStock(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Stock, "sin variantes activas el agregado es cero")
}

func TestSincronizarStock_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _, _ := armarUseCase()

	_, err := uc.SincronizarStock(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
