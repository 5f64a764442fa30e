package repository

import (
	"context"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// FeedbackLog define el puerto del log de opiniones de clientes (DIP).
// Solo se agrega: no hay actualización ni borrado. ReadAll devuelve las entradas
// en el orden en que se agregaron.
type FeedbackLog interface {
	Append(ctx context.Context, entry entity.Feedback) error
	ReadAll(ctx context.Context) ([]entity.Feedback, error)
}
