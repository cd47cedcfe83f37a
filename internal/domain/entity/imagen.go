package entity

import "time"

// Imagen es una foto asociada a un producto. Clave es el identificador del
// objeto en el almacenamiento externo (la API solo registra metadatos; la
// subida del binario queda fuera de este servicio).
type Imagen struct {
	ID         int64
	ProductoID int64
	Clave      string // uuid del objeto en el storage
	URL        string
	Principal  bool
	CreatedAt  time.Time
}
