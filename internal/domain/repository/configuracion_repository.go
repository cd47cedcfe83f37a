package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ConfiguracionRepository define el puerto para la configuración de la tienda
// (fila única; Guardar hace upsert).
type ConfiguracionRepository interface {
	Obtener(ctx context.Context) (*entity.Configuracion, error)
	Guardar(ctx context.Context, c *entity.Configuracion) error
}
