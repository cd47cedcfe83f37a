package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// VarianteUseCase CRUD de variantes. Mutar el stock de una variante deja el
// agregado del producto desfasado hasta la próxima sincronización; ese desfase
// es deliberado (consistencia eventual).
type VarianteUseCase struct {
	repo      repository.VarianteRepository
	productos repository.ProductoRepository
}

// NewVarianteUseCase construye el caso de uso.
func NewVarianteUseCase(repo repository.VarianteRepository, productos repository.ProductoRepository) *VarianteUseCase {
	return &VarianteUseCase{repo: repo, productos: productos}
}

// Crear crea una variante para un producto existente. ErrNotFound si el
// producto no existe; ErrDuplicate si el SKU ya está usado.
func (uc *VarianteUseCase) Crear(ctx context.Context, productoID int64, in dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
	producto, err := uc.productos.ObtenerPorID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	variante := &entity.Variante{
		ProductoID: productoID,
		Nombre:     in.Nombre,
		SKU:        in.SKU,
		Precio:     in.Precio,
		Stock:      in.Stock,
		Activo:     in.Activo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Crear(ctx, variante); err != nil {
		return nil, err
	}
	return toVarianteResponse(variante), nil
}

// Actualizar actualiza una variante.
func (uc *VarianteUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
	variante, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if variante == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		variante.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		variante.Precio = *in.Precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		variante.Stock = *in.Stock
	}
	if in.Activo != nil {
		variante.Activo = *in.Activo
	}
	variante.UpdatedAt = time.Now()
	if err := uc.repo.Actualizar(ctx, variante); err != nil {
		return nil, err
	}
	return toVarianteResponse(variante), nil
}

// Eliminar borra una variante.
func (uc *VarianteUseCase) Eliminar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListarPorProducto lista las variantes de un producto.
func (uc *VarianteUseCase) ListarPorProducto(ctx context.Context, productoID int64) ([]dto.VarianteResponse, error) {
	list, err := uc.repo.ListarPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VarianteResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVarianteResponse(v))
	}
	return items, nil
}

func toVarianteResponse(v *entity.Variante) *dto.VarianteResponse {
	if v == nil {
		return nil
	}
	return &dto.VarianteResponse{
		ID:         v.ID,
		ProductoID: v.ProductoID,
		Nombre:     v.Nombre,
		SKU:        v.SKU,
		Precio:     v.Precio,
		Stock:      v.Stock,
		Activo:     v.Activo,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
