package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando la fila no existe.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *entity.Usuario) error
	ObtenerPorID(ctx context.Context, id int64) (*entity.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Contar(ctx context.Context) (int, error)
}
