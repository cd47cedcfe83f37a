package auth

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// IdentityResolver confirma contra la DB la identidad que afirma un token ya
// verificado: la cuenta debe existir y estar activa. Un token criptográficamente
// válido no basta; la cuenta pudo ser borrada o desactivada después de emitirlo.
type IdentityResolver struct {
	usuarioRepo repository.UsuarioRepository
}

// NewIdentityResolver construye el resolutor.
func NewIdentityResolver(usuarioRepo repository.UsuarioRepository) *IdentityResolver {
	return &IdentityResolver{usuarioRepo: usuarioRepo}
}

// Resolve devuelve el Principal de los claims o ErrCuentaNoEncontrada cuando la
// cuenta ya no existe o está inactiva. En la frontera HTTP ambos casos producen
// 401 igual que un token inválido, pero el error se registra distinto.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *jwt.Claims) (*entity.Principal, error) {
	usuario, err := r.usuarioRepo.ObtenerPorID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrCuentaNoEncontrada
	}
	return &entity.Principal{ID: usuario.ID, Email: usuario.Email, Rol: usuario.Rol}, nil
}
