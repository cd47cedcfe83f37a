package entity

import "time"

// Roles válidos para Usuario.
const (
	RolCliente = "cliente"
	RolAdmin   = "admin"
)

// Usuario representa una cuenta del sistema (cliente de la tienda o administrador).
type Usuario struct {
	ID           int64
	Email        string
	Nombre       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // cliente, admin
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal es la identidad resuelta de una petición autenticada: claims del
// token confirmados contra la DB. Efímero, nunca se persiste.
type Principal struct {
	ID    int64
	Email string
	Rol   string
}

// EsAdmin indica si el principal tiene rol de administrador.
func (p Principal) EsAdmin() bool {
	return p.Rol == RolAdmin
}
