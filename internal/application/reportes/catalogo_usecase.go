// Package reportes genera reportes administrativos descargables.
package reportes

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const maxProductosCatalogo = 500

// CatalogoPDFGenerator es el puerto hacia el generador de PDF (lo implementa
// infrastructure/pdf con Maroto).
type CatalogoPDFGenerator interface {
	GenerarCatalogoPDF(ctx context.Context, cfg *entity.Configuracion, productos []*entity.Producto) ([]byte, error)
}

// CatalogoUseCase arma el reporte PDF del catálogo completo (vista admin:
// incluye productos inactivos, excluye eliminados).
type CatalogoUseCase struct {
	productos     repository.ProductoRepository
	configuracion repository.ConfiguracionRepository
	generator     CatalogoPDFGenerator
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(
	productos repository.ProductoRepository,
	configuracion repository.ConfiguracionRepository,
	generator CatalogoPDFGenerator,
) *CatalogoUseCase {
	return &CatalogoUseCase{productos: productos, configuracion: configuracion, generator: generator}
}

// GenerarPDF devuelve los bytes del PDF del catálogo.
func (uc *CatalogoUseCase) GenerarPDF(ctx context.Context) ([]byte, error) {
	cfg, err := uc.configuracion.Obtener(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtener configuración: %w", err)
	}
	if cfg == nil {
		cfg = &entity.Configuracion{NombreTienda: "Mi Tienda", Moneda: "COP"}
	}
	productos, err := uc.productos.ListarAdmin(ctx, false, maxProductosCatalogo, 0)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return uc.generator.GenerarCatalogoPDF(ctx, cfg, productos)
}
