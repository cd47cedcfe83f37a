// Package analytics contiene los casos de uso de lectura para el panel de
// administración.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	umbralBajoStock = 5  // stock agregado bajo el cual un producto entra al widget
	maxBajoStock    = 10 // filas del widget de bajo stock
)

// DashboardUseCase arma el resumen del panel: conteos globales y productos con
// stock agregado bajo. Solo lecturas; las cuatro consultas van en paralelo.
type DashboardUseCase struct {
	productos repository.ProductoRepository
	pedidos   repository.PedidoRepository
	usuarios  repository.UsuarioRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productos repository.ProductoRepository,
	pedidos repository.PedidoRepository,
	usuarios repository.UsuarioRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productos: productos, pedidos: pedidos, usuarios: usuarios}
}

// GetResumen construye el DashboardResumenDTO.
func (uc *DashboardUseCase) GetResumen(ctx context.Context) (*dto.DashboardResumenDTO, error) {
	type conteoResult struct {
		n   int
		err error
	}
	type bajoStockResult struct {
		items []dto.ProductoBajoStockDTO
		err   error
	}

	productosCh := make(chan conteoResult, 1)
	pedidosCh := make(chan conteoResult, 1)
	usuariosCh := make(chan conteoResult, 1)
	bajoStockCh := make(chan bajoStockResult, 1)

	go func() {
		n, err := uc.productos.Contar(ctx)
		productosCh <- conteoResult{n, err}
	}()
	go func() {
		n, err := uc.pedidos.Contar(ctx)
		pedidosCh <- conteoResult{n, err}
	}()
	go func() {
		n, err := uc.usuarios.Contar(ctx)
		usuariosCh <- conteoResult{n, err}
	}()
	go func() {
		list, err := uc.productos.ListarBajoStock(ctx, umbralBajoStock, maxBajoStock)
		if err != nil {
			bajoStockCh <- bajoStockResult{err: err}
			return
		}
		items := make([]dto.ProductoBajoStockDTO, 0, len(list))
		for _, p := range list {
			items = append(items, dto.ProductoBajoStockDTO{ID: p.ID, Nombre: p.Nombre, Stock: p.Stock})
		}
		bajoStockCh <- bajoStockResult{items: items}
	}()

	productosRes := <-productosCh
	pedidosRes := <-pedidosCh
	usuariosRes := <-usuariosCh
	bajoStockRes := <-bajoStockCh

	if productosRes.err != nil {
		return nil, fmt.Errorf("contar productos: %w", productosRes.err)
	}
	if pedidosRes.err != nil {
		return nil, fmt.Errorf("contar pedidos: %w", pedidosRes.err)
	}
	if usuariosRes.err != nil {
		return nil, fmt.Errorf("contar usuarios: %w", usuariosRes.err)
	}
	if bajoStockRes.err != nil {
		return nil, fmt.Errorf("listar bajo stock: %w", bajoStockRes.err)
	}

	return &dto.DashboardResumenDTO{
		TotalProductos: productosRes.n,
		TotalPedidos:   pedidosRes.n,
		TotalUsuarios:  usuariosRes.n,
		BajoStock:      bajoStockRes.items,
	}, nil
}
