package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
)

var _ repository.FeedbackLog = (*FeedbackLog)(nil)

// FeedbackLog implementación en memoria del log de opiniones (tests y desarrollo).
type FeedbackLog struct {
	mu      sync.RWMutex
	entries []entity.Feedback
}

// NewFeedbackLog construye un log vacío.
func NewFeedbackLog() *FeedbackLog {
	return &FeedbackLog{}
}

// Append agrega la entrada al final.
func (l *FeedbackLog) Append(_ context.Context, entry entity.Feedback) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// ReadAll devuelve una copia de las entradas en orden de llegada.
func (l *FeedbackLog) ReadAll(_ context.Context) ([]entity.Feedback, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Feedback, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
