package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/ports"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/pkg/validator"
)

// FeedbackUseCase recibe y lista las opiniones de clientes.
type FeedbackUseCase struct {
	log      repository.FeedbackLog
	notifier ports.FeedbackNotifier
	delay    time.Duration
	now      func() time.Time
}

// NewFeedbackUseCase construye el caso de uso. notifier puede ser nil.
// delay es la espera fija antes de confirmar un envío.
func NewFeedbackUseCase(log repository.FeedbackLog, notifier ports.FeedbackNotifier, delay time.Duration) *FeedbackUseCase {
	return &FeedbackUseCase{
		log:      log,
		notifier: notifier,
		delay:    delay,
		now:      time.Now,
	}
}

// Submit valida, espera la demora configurada, agrega la opinión al log y avisa al notifier.
func (uc *FeedbackUseCase) Submit(ctx context.Context, in dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Feedback = strings.TrimSpace(in.Feedback)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := NewValidationError(validator.ValidateStruct(in)); err != nil {
		return nil, err
	}

	// La demora no se cancela: un envío válido siempre termina guardado,
	// aunque el cliente se haya desconectado.
	ctx = context.WithoutCancel(ctx)
	if uc.delay > 0 {
		time.Sleep(uc.delay)
	}

	fb := entity.Feedback{
		ID:           uuid.New().String(),
		Rating:       in.Rating,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Feedback:     in.Feedback,
		Timestamp:    uc.now().UTC(),
	}
	if err := uc.log.Append(ctx, fb); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.NotifyFeedback(fb)
	}
	return toFeedbackResponse(fb), nil
}

// List devuelve todas las opiniones en orden de envío con el promedio de calificación.
func (uc *FeedbackUseCase) List(ctx context.Context) (*dto.FeedbackListResponse, error) {
	entries, err := uc.log.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeedbackResponse, 0, len(entries))
	sum := 0
	for _, fb := range entries {
		items = append(items, *toFeedbackResponse(fb))
		sum += fb.Rating
	}
	var avg float64
	if len(entries) > 0 {
		avg = float64(sum) / float64(len(entries))
	}
	return &dto.FeedbackListResponse{Items: items, Total: len(items), AverageRating: avg}, nil
}

func toFeedbackResponse(fb entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:           fb.ID,
		Rating:       fb.Rating,
		CustomerName: fb.CustomerName,
		Email:        fb.Email,
		Phone:        fb.Phone,
		Feedback:     fb.Feedback,
		Timestamp:    fb.Timestamp,
	}
}
