package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/infrastructure/memory"
)

type recordingNotifier struct {
	mu  sync.Mutex
	got []entity.Feedback
}

func (n *recordingNotifier) NotifyFeedback(fb entity.Feedback) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, fb)
}

func validFeedback(name string) dto.CreateFeedbackRequest {
	return dto.CreateFeedbackRequest{
		Rating:       5,
		CustomerName: name,
		Email:        "ana@example.com",
		Feedback:     "Excelente servicio",
	}
}

func TestFeedbackUseCase_SubmitAgregaEnOrden(t *testing.T) {
	ctx := context.Background()
	log := memory.NewFeedbackLog()
	n := &recordingNotifier{}
	uc := usecase.NewFeedbackUseCase(log, n, 0)

	ids := map[string]bool{}
	for _, name := range []string{"Ana", "Luis", "Marta"} {
		res, err := uc.Submit(ctx, validFeedback(name))
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, time.UTC, res.Timestamp.Location())
		ids[res.ID] = true
	}
	assert.Len(t, ids, 3)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "Ana", list.Items[0].CustomerName)
	assert.Equal(t, "Marta", list.Items[2].CustomerName)
	assert.Equal(t, 5.0, list.AverageRating)
	assert.Len(t, n.got, 3)
}

func TestFeedbackUseCase_ValidacionNoAgrega(t *testing.T) {
	ctx := context.Background()
	log := memory.NewFeedbackLog()
	uc := usecase.NewFeedbackUseCase(log, nil, 0)

	in := validFeedback("   ")
	in.Rating = 0
	_, err := uc.Submit(ctx, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRequiredField))

	var verr *usecase.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Tag
	}
	assert.Equal(t, "required", fields["rating"])
	assert.Equal(t, "required", fields["customerName"])

	bad := validFeedback("Ana")
	bad.Rating = 7
	bad.Email = "no-es-email"
	_, err = uc.Submit(ctx, bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFeedbackUseCase_ContextoCanceladoIgualGuarda(t *testing.T) {
	log := memory.NewFeedbackLog()
	n := &recordingNotifier{}
	uc := usecase.NewFeedbackUseCase(log, n, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	res, err := uc.Submit(ctx, validFeedback("Ana"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	entries, err := log.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, res.ID, entries[0].ID)
	assert.Len(t, n.got, 1)
}

func TestFeedbackUseCase_ListVacio(t *testing.T) {
	uc := usecase.NewFeedbackUseCase(memory.NewFeedbackLog(), nil, 0)
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Items)
	assert.Zero(t, list.AverageRating)
}
