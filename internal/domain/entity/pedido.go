package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	PedidoPendiente = "pendiente"
	PedidoPagado    = "pagado"
	PedidoEnviado   = "enviado"
	PedidoCancelado = "cancelado"
)

// Pedido es una orden de compra de un usuario.
type Pedido struct {
	ID        int64
	Numero    string // ej. PED-3f9a1c2d
	UsuarioID int64
	Estado    string
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []PedidoItem
}

// PedidoItem es una línea del pedido. Congela precio y nombre al momento de
// la compra; ProductoID mantiene la referencia que bloquea la eliminación
// permanente del producto.
type PedidoItem struct {
	ID         int64
	PedidoID   int64
	ProductoID int64
	VarianteID *int64 // nil cuando se compra el producto sin variante
	Nombre     string
	Precio     decimal.Decimal
	Cantidad   int
}
