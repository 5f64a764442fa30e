package ports

import (
	"context"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// FeedbackNotifier recibe cada opinión recién guardada (p. ej. para empujarla por WebSocket).
// No debe bloquear al llamador.
type FeedbackNotifier interface {
	NotifyFeedback(fb entity.Feedback)
}

// DocumentRenderer genera la representación imprimible (PDF) de un documento con totales.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, doc *entity.Document, outlet *entity.Outlet) ([]byte, error)
}
