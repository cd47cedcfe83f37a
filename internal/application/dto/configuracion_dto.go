package dto

import "time"

// ActualizarConfiguracionRequest entrada para editar la configuración de la tienda.
type ActualizarConfiguracionRequest struct {
	NombreTienda  *string `json:"nombre_tienda" validate:"omitempty,min=1,max=200"`
	EmailContacto *string `json:"email_contacto" validate:"omitempty,email"`
	Moneda        *string `json:"moneda" validate:"omitempty,len=3"`
	CostoEnvio    *int64  `json:"costo_envio" validate:"omitempty,min=0"`
	MensajeBanner *string `json:"mensaje_banner"`
	Mantenimiento *bool   `json:"mantenimiento"`
}

// ConfiguracionResponse salida de la configuración.
type ConfiguracionResponse struct {
	NombreTienda  string    `json:"nombre_tienda"`
	EmailContacto string    `json:"email_contacto"`
	Moneda        string    `json:"moneda"`
	CostoEnvio    int64     `json:"costo_envio"`
	MensajeBanner string    `json:"mensaje_banner"`
	Mantenimiento bool      `json:"mantenimiento"`
	UpdatedAt     time.Time `json:"updated_at"`
}
