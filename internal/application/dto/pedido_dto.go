package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPedidoRequest entrada para crear un pedido.
type CrearPedidoRequest struct {
	Items []CrearPedidoItem `json:"items" validate:"required,min=1,dive"`
}

// CrearPedidoItem una línea del pedido a crear.
type CrearPedidoItem struct {
	ProductoID int64  `json:"producto_id" validate:"required,gt=0"`
	VarianteID *int64 `json:"variante_id"`
	Cantidad   int    `json:"cantidad" validate:"required,gt=0"`
}

// PedidoItemResponse línea de pedido en respuestas.
type PedidoItemResponse struct {
	ProductoID int64           `json:"producto_id"`
	VarianteID *int64          `json:"variante_id,omitempty"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID        int64                `json:"id"`
	Numero    string               `json:"numero"`
	UsuarioID int64                `json:"usuario_id"`
	Estado    string               `json:"estado"`
	Total     decimal.Decimal      `json:"total"`
	Items     []PedidoItemResponse `json:"items"`
	CreatedAt time.Time            `json:"created_at"`
}

// PedidoListResponse lista paginada de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// PagoResponse resultado de la pasarela de pago simulada: siempre aprueba.
type PagoResponse struct {
	PedidoID   int64  `json:"pedido_id"`
	Estado     string `json:"estado"`
	Referencia string `json:"referencia"`
}
