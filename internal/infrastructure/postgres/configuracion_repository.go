package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo implementación de ConfiguracionRepository sobre PostgreSQL.
// La tabla tiene a lo sumo una fila (id = 1); Guardar hace upsert sobre ella.
type ConfiguracionRepo struct {
	q Querier
}

// NewConfiguracionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConfiguracionRepository(q Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// Obtener devuelve la configuración; (nil, nil) si aún no se guardó ninguna.
func (r *ConfiguracionRepo) Obtener(ctx context.Context) (*entity.Configuracion, error) {
	query := `
		SELECT id, nombre_tienda, email_contacto, moneda, costo_envio, mensaje_banner, mantenimiento, updated_at
		FROM configuracion WHERE id = 1`
	var c entity.Configuracion
	err := r.q.QueryRow(ctx, query).Scan(
		&c.ID, &c.NombreTienda, &c.EmailContacto, &c.Moneda, &c.CostoEnvio,
		&c.MensajeBanner, &c.Mantenimiento, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracion: %w", err)
	}
	return &c, nil
}

// Guardar inserta o actualiza la fila única de configuración.
func (r *ConfiguracionRepo) Guardar(ctx context.Context, c *entity.Configuracion) error {
	query := `
		INSERT INTO configuracion (id, nombre_tienda, email_contacto, moneda, costo_envio, mensaje_banner, mantenimiento, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET nombre_tienda = EXCLUDED.nombre_tienda,
			email_contacto = EXCLUDED.email_contacto,
			moneda = EXCLUDED.moneda,
			costo_envio = EXCLUDED.costo_envio,
			mensaje_banner = EXCLUDED.mensaje_banner,
			mantenimiento = EXCLUDED.mantenimiento,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		c.NombreTienda, c.EmailContacto, c.Moneda, c.CostoEnvio,
		c.MensajeBanner, c.Mantenimiento, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("guardar configuracion: %w", err)
	}
	c.ID = 1
	return nil
}
