package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variante es una presentación concreta de un producto (talla, color).
// Referencia al producto por ID; no es dueña de él. Solo las variantes
// activas cuentan para el stock agregado del producto.
type Variante struct {
	ID         int64
	ProductoID int64
	Nombre     string // ej. "Talla M / Rojo"
	SKU        string
	Precio     decimal.Decimal // 0 = hereda el precio del producto
	Stock      int
	Activo     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
