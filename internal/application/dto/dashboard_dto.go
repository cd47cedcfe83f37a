package dto

// ProductoBajoStockDTO producto cuyo stock agregado está bajo el umbral.
type ProductoBajoStockDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Stock  int    `json:"stock"`
}

// DashboardResumenDTO resumen para el panel de administración.
type DashboardResumenDTO struct {
	TotalProductos int                    `json:"total_productos"`
	TotalPedidos   int                    `json:"total_pedidos"`
	TotalUsuarios  int                    `json:"total_usuarios"`
	BajoStock      []ProductoBajoStockDTO `json:"bajo_stock"`
}
