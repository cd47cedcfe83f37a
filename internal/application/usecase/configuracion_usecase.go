package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ConfiguracionUseCase lectura y edición de la configuración de la tienda.
// La escritura es admin-only; la autorización la impone el router.
type ConfiguracionUseCase struct {
	repo repository.ConfiguracionRepository
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(repo repository.ConfiguracionRepository) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{repo: repo}
}

// Obtener devuelve la configuración; valores por defecto si aún no se guardó.
func (uc *ConfiguracionUseCase) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	cfg, err := uc.repo.Obtener(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = configuracionPorDefecto()
	}
	return toConfiguracionResponse(cfg), nil
}

// Actualizar aplica un patch parcial y persiste (upsert de fila única).
func (uc *ConfiguracionUseCase) Actualizar(ctx context.Context, in dto.ActualizarConfiguracionRequest) (*dto.ConfiguracionResponse, error) {
	cfg, err := uc.repo.Obtener(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = configuracionPorDefecto()
	}
	if in.NombreTienda != nil {
		cfg.NombreTienda = *in.NombreTienda
	}
	if in.EmailContacto != nil {
		cfg.EmailContacto = *in.EmailContacto
	}
	if in.Moneda != nil {
		cfg.Moneda = *in.Moneda
	}
	if in.CostoEnvio != nil {
		cfg.CostoEnvio = *in.CostoEnvio
	}
	if in.MensajeBanner != nil {
		cfg.MensajeBanner = *in.MensajeBanner
	}
	if in.Mantenimiento != nil {
		cfg.Mantenimiento = *in.Mantenimiento
	}
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Guardar(ctx, cfg); err != nil {
		return nil, err
	}
	return toConfiguracionResponse(cfg), nil
}

func configuracionPorDefecto() *entity.Configuracion {
	return &entity.Configuracion{
		NombreTienda: "Mi Tienda",
		Moneda:       "COP",
	}
}

func toConfiguracionResponse(c *entity.Configuracion) *dto.ConfiguracionResponse {
	return &dto.ConfiguracionResponse{
		NombreTienda:  c.NombreTienda,
		EmailContacto: c.EmailContacto,
		Moneda:        c.Moneda,
		CostoEnvio:    c.CostoEnvio,
		MensajeBanner: c.MensajeBanner,
		Mantenimiento: c.Mantenimiento,
		UpdatedAt:     c.UpdatedAt,
	}
}
