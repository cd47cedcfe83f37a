package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest entrada para crear un producto. Nace inactivo y sin stock.
type CrearProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Slug        string          `json:"slug" validate:"required,min=1,max=120"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	CategoriaID int64           `json:"categoria_id"`
	Destacado   bool            `json:"destacado"`
}

// ActualizarProductoRequest entrada para actualizar campos descriptivos.
// Stock no es editable directo: se deriva de las variantes vía sincronización.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	CategoriaID *int64           `json:"categoria_id"`
	Destacado   *bool            `json:"destacado"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Slug        string          `json:"slug"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Estado      string          `json:"estado"`
	Destacado   bool            `json:"destacado"`
	CategoriaID int64           `json:"categoria_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockSincronizadoResponse resultado de la sincronización de stock.
type StockSincronizadoResponse struct {
	ProductoID int64 `json:"producto_id"`
	Stock      int   `json:"stock"`
}

// RegistrarImagenRequest entrada para asociar una imagen ya subida al storage.
type RegistrarImagenRequest struct {
	URL       string `json:"url" validate:"required,url"`
	Principal bool   `json:"principal"`
}

// ImagenResponse salida de una imagen.
type ImagenResponse struct {
	ID         int64  `json:"id"`
	ProductoID int64  `json:"producto_id"`
	Clave      string `json:"clave"`
	URL        string `json:"url"`
	Principal  bool   `json:"principal"`
}
