package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoProducto es el ciclo de vida explícito de un producto. Los dos flags
// activo/eliminado de la tabla codifican implícitamente estos estados; el
// dominio los representa como enumeración para que las combinaciones ilegales
// no sean representables. El cuarto estado (fila eliminada definitivamente) no
// tiene valor: se manifiesta como ErrNotFound.
type EstadoProducto string

const (
	EstadoActivo    EstadoProducto = "activo"    // visible y comprable
	EstadoInactivo  EstadoProducto = "inactivo"  // oculto del catálogo, íntegro
	EstadoEliminado EstadoProducto = "eliminado" // soft-delete, recuperable
)

// EstadoDesdeFlags proyecta los flags de la tabla al estado de dominio.
// eliminado=true domina sobre activo.
func EstadoDesdeFlags(activo, eliminado bool) EstadoProducto {
	if eliminado {
		return EstadoEliminado
	}
	if activo {
		return EstadoActivo
	}
	return EstadoInactivo
}

// Flags devuelve la representación de dos columnas del estado.
func (e EstadoProducto) Flags() (activo, eliminado bool) {
	switch e {
	case EstadoActivo:
		return true, false
	case EstadoEliminado:
		return false, true
	default:
		return false, false
	}
}

// PuedeTransicionar valida las transiciones del ciclo de vida:
//
//	activar:   inactivo|eliminado → activo
//	desactivar: activo → inactivo
//	eliminar (soft): activo|inactivo → eliminado
//	restaurar: eliminado → inactivo (restaurar no implica re-activar)
func (e EstadoProducto) PuedeTransicionar(destino EstadoProducto) bool {
	if e == destino {
		return false
	}
	switch destino {
	case EstadoActivo:
		return e == EstadoInactivo || e == EstadoEliminado
	case EstadoInactivo:
		return e == EstadoActivo || e == EstadoEliminado
	case EstadoEliminado:
		return e == EstadoActivo || e == EstadoInactivo
	}
	return false
}

// Producto es un artículo del catálogo. Stock es un agregado derivado: debe
// igualar la suma del stock de sus variantes activas. La invariante no se
// mantiene en cada escritura de variante; se restaura bajo demanda con la
// sincronización de stock.
type Producto struct {
	ID          int64
	Nombre      string
	Slug        string // único
	Descripcion string
	Precio      decimal.Decimal
	Stock       int
	Estado      EstadoProducto
	Destacado   bool
	CategoriaID int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comprable indica si el producto puede mostrarse y venderse en la tienda.
func (p *Producto) Comprable() bool {
	return p.Estado == EstadoActivo && p.Stock > 0
}
