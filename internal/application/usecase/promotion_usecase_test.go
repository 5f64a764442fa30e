package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

func TestPromotionUseCase_Toggle(t *testing.T) {
	uc := usecase.NewPromotionUseCase()
	sel := dto.SelectionDTO{Days: []string{"monday"}, Items: []string{"pizza"}}

	out, err := uc.Toggle(dto.ToggleRequest{Selection: sel, Field: "days", Value: "Friday"})
	require.NoError(t, err)
	assert.Equal(t, []string{"monday", "friday"}, out.Days)
	assert.Equal(t, []string{"pizza"}, out.Items)

	out, err = uc.Toggle(dto.ToggleRequest{Selection: *out, Field: "items", Value: "pizza"})
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	out, err = uc.Toggle(dto.ToggleRequest{Selection: *out, Field: "outlets", Value: "out-norte"})
	require.NoError(t, err)
	assert.Equal(t, []string{"out-norte"}, out.Outlets)
	assert.Equal(t, []string{"monday", "friday"}, out.Days)
}

func TestPromotionUseCase_ToggleNormalizaRepetidos(t *testing.T) {
	uc := usecase.NewPromotionUseCase()
	sel := dto.SelectionDTO{Days: []string{"monday", "Monday"}, Outlets: []string{"out-norte", "out-norte", "out-centro"}}

	out, err := uc.Toggle(dto.ToggleRequest{Selection: sel, Field: "outlets", Value: "out-norte"})
	require.NoError(t, err)
	assert.Equal(t, []string{"out-centro"}, out.Outlets)
	assert.Equal(t, []string{"monday"}, out.Days)

	back, err := uc.Toggle(dto.ToggleRequest{Selection: *out, Field: "outlets", Value: "out-norte"})
	require.NoError(t, err)
	assert.Equal(t, []string{"out-centro", "out-norte"}, back.Outlets)

	again, err := uc.Toggle(dto.ToggleRequest{Selection: *back, Field: "outlets", Value: "out-norte"})
	require.NoError(t, err)
	assert.Equal(t, out.Outlets, again.Outlets)
}

func TestPromotionUseCase_ToggleInvalido(t *testing.T) {
	uc := usecase.NewPromotionUseCase()
	_, err := uc.Toggle(dto.ToggleRequest{Field: "colors", Value: "red"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Toggle(dto.ToggleRequest{Field: "days", Value: "funday"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func validPromotion() dto.PromotionRequest {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return dto.PromotionRequest{
		Name:          "Martes de pizza",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: amt("15"),
		StartDate:     start,
		EndDate:       start.AddDate(0, 1, 0),
		Selection:     dto.SelectionDTO{Days: []string{"tuesday"}, Outlets: []string{"out-centro"}},
	}
}

func TestPromotionUseCase_Validate(t *testing.T) {
	uc := usecase.NewPromotionUseCase()
	res, err := uc.Validate(validPromotion())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, []string{"tuesday"}, res.Selection.Days)

	p := validPromotion()
	p.Selection = dto.SelectionDTO{}
	_, err = uc.Validate(p)
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrRequiredField)
	assert.Len(t, verr.Fields, 2)

	p = validPromotion()
	p.DiscountValue = amt("120")
	_, err = uc.Validate(p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p = validPromotion()
	p.EndDate = p.StartDate.AddDate(0, 0, -1)
	_, err = uc.Validate(p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPromotionUseCase_LoyaltyPoints(t *testing.T) {
	uc := usecase.NewPromotionUseCase()
	res := uc.LoyaltyPoints("100", " Gold ")
	assert.Equal(t, "gold", res.Tier)
	assert.Equal(t, int64(200), res.Points)

	res = uc.LoyaltyPoints("abc", "silver")
	assert.Equal(t, int64(0), res.Points)
}
