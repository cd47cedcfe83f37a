package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{
	Secret:  "secret-de-tests",
	ExpDays: 7,
	Issuer:  "tienda-api-test",
}

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario), nextID: 1}
}

func (r *fakeUsuarioRepo) Crear(_ context.Context, u *entity.Usuario) error {
	for _, e := range r.usuarios {
		if e.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) ObtenerPorID(_ context.Context, id int64) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUsuarioRepo) ObtenerPorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Contar(_ context.Context) (int, error) { return len(r.usuarios), nil }

func TestRegistrar_EmiteSesionConRolCliente(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	sesion, err := uc.Registrar(context.Background(), dto.RegistroRequest{
		Email:    "ana@tienda.test",
		Nombre:   "Ana",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RolCliente, sesion.Usuario.Rol,
		"el registro público nunca otorga rol admin")
	assert.True(t, sesion.Usuario.Activo)

	claims, err := pkgjwt.Parse(testJWTCfg.Secret, sesion.Token)
	require.NoError(t, err)
	assert.Equal(t, sesion.Usuario.ID, claims.UserID)
	assert.Equal(t, "ana@tienda.test", claims.Email)
	assert.Equal(t, entity.RolCliente, claims.Rol)
}

func TestRegistrar_EmailDuplicado_RetornaErrDuplicate(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	ctx := context.Background()
	_, err := uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_CredencialesCorrectas_EmiteSesion(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	ctx := context.Background()
	_, err := uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)

	sesion, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, sesion.Token)
}

// Password incorrecto y email inexistente devuelven el mismo error: la
// respuesta no debe revelar cuál de los dos falló.
func TestLogin_CredencialesMalas_RetornaErrUnauthorized(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	ctx := context.Background()
	_, err := uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.test", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@tienda.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva_RetornaErrForbidden(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	ctx := context.Background()
	sesion, err := uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)
	repo.usuarios[sesion.Usuario.ID].Activo = false

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolve_CuentaBorradaDespuesDelToken(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	resolver := auth.NewIdentityResolver(repo)
	ctx := context.Background()
	sesion, err := uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTCfg.Secret, sesion.Token)
	require.NoError(t, err)

	// Con la cuenta viva el resolver confirma la identidad.
	principal, err := resolver.Resolve(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, sesion.Usuario.ID, principal.ID)

	// Cuenta borrada: el token sigue siendo válido pero la identidad ya no.
	delete(repo.usuarios, sesion.Usuario.ID)
	_, err = resolver.Resolve(ctx, claims)
	assert.ErrorIs(t, err, domain.ErrCuentaNoEncontrada)
}

func TestResolve_CuentaDesactivada(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)
	resolver := auth.NewIdentityResolver(repo)
	ctx := context.Background()
	sesion, err := uc.Registrar(ctx, dto.RegistroRequest{Email: "ana@tienda.test", Password: "secreto123"})
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTCfg.Secret, sesion.Token)
	require.NoError(t, err)

	repo.usuarios[sesion.Usuario.ID].Activo = false
	_, err = resolver.Resolve(ctx, claims)
	assert.ErrorIs(t, err, domain.ErrCuentaNoEncontrada)
}
