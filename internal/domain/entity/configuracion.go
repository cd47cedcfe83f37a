package entity

import "time"

// Configuracion son los parámetros editables de la tienda (fila única).
type Configuracion struct {
	ID             int64
	NombreTienda   string
	EmailContacto  string
	Moneda         string // código ISO 4217, ej. "COP"
	CostoEnvio     int64  // en unidades mínimas de la moneda
	MensajeBanner  string
	Mantenimiento  bool // modo mantenimiento: la tienda solo responde a admins
	UpdatedAt      time.Time
}
