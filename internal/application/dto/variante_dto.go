package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearVarianteRequest entrada para crear una variante de producto.
type CrearVarianteRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=1,max=200"`
	SKU    string          `json:"sku" validate:"required,min=1,max=100"`
	Precio decimal.Decimal `json:"precio"`
	Stock  int             `json:"stock" validate:"min=0"`
	Activo bool            `json:"activo"`
}

// ActualizarVarianteRequest entrada para actualizar una variante. Cambiar el
// stock aquí NO recalcula el agregado del producto; el llamador debe invocar
// después la sincronización de stock.
type ActualizarVarianteRequest struct {
	Nombre *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Precio *decimal.Decimal `json:"precio"`
	Stock  *int             `json:"stock" validate:"omitempty,min=0"`
	Activo *bool            `json:"activo"`
}

// VarianteResponse salida de una variante.
type VarianteResponse struct {
	ID         int64           `json:"id"`
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	SKU        string          `json:"sku"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	Activo     bool            `json:"activo"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
