package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
	"github.com/jhoicas/restaurante-mis/pkg/validator"
)

var hundred = decimal.NewFromInt(100)

// PromotionUseCase arma y valida promociones y calcula puntos de lealtad.
type PromotionUseCase struct{}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase() *PromotionUseCase { return &PromotionUseCase{} }

// Toggle aplica el toggle sobre la lista indicada de la selección.
func (uc *PromotionUseCase) Toggle(in dto.ToggleRequest) (*dto.SelectionDTO, error) {
	if err := NewValidationError(validator.ValidateStruct(in)); err != nil {
		return nil, err
	}
	sel, err := toSelection(in.Selection)
	if err != nil {
		return nil, err
	}
	switch in.Field {
	case "days":
		day, ok := parseWeekday(in.Value)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		sel = rules.ToggleField(sel, func(s *entity.PromotionSelection) *[]time.Weekday { return &s.Days }, day)
	case "items":
		sel = rules.ToggleField(sel, func(s *entity.PromotionSelection) *[]string { return &s.Items }, in.Value)
	case "outlets":
		sel = rules.ToggleField(sel, func(s *entity.PromotionSelection) *[]string { return &s.Outlets }, in.Value)
	}
	out := toSelectionDTO(sel)
	return &out, nil
}

// Validate revisa el formulario completo: nombre, tipo, vigencia, al menos un día y un outlet.
func (uc *PromotionUseCase) Validate(in dto.PromotionRequest) (*dto.PromotionResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	fields := validator.ValidateStruct(in)
	if len(in.Selection.Days) == 0 {
		fields = append(fields, required("selection.days"))
	}
	if len(in.Selection.Outlets) == 0 {
		fields = append(fields, required("selection.outlets"))
	}
	if err := NewValidationError(fields); err != nil {
		return nil, err
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	value := in.DiscountValue.Decimal
	if !value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountType == entity.DiscountPercentage && value.GreaterThan(hundred) {
		return nil, domain.ErrInvalidInput
	}
	sel, err := toSelection(in.Selection)
	if err != nil {
		return nil, err
	}
	return &dto.PromotionResponse{
		ID:            uuid.New().String(),
		Name:          in.Name,
		DiscountType:  in.DiscountType,
		DiscountValue: value,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Selection:     toSelectionDTO(sel),
	}, nil
}

// LoyaltyPoints calcula los puntos de una compra según el nivel del cliente.
func (uc *PromotionUseCase) LoyaltyPoints(amount, tier string) *dto.LoyaltyResponse {
	a := rules.ParseAmount(amount)
	tier = strings.ToLower(strings.TrimSpace(tier))
	return &dto.LoyaltyResponse{
		Amount:     a,
		Tier:       tier,
		Multiplier: rules.TierMultiplier(tier),
		Points:     rules.LoyaltyPoints(a, tier),
	}
}

func toSelection(in dto.SelectionDTO) (entity.PromotionSelection, error) {
	sel := entity.PromotionSelection{
		Items:   rules.Unique(in.Items),
		Outlets: rules.Unique(in.Outlets),
	}
	for _, name := range in.Days {
		day, ok := parseWeekday(name)
		if !ok {
			return entity.PromotionSelection{}, domain.ErrInvalidInput
		}
		sel.Days = append(sel.Days, day)
	}
	sel.Days = rules.Unique(sel.Days)
	return sel, nil
}

func toSelectionDTO(sel entity.PromotionSelection) dto.SelectionDTO {
	out := dto.SelectionDTO{
		Days:    make([]string, 0, len(sel.Days)),
		Items:   append([]string{}, sel.Items...),
		Outlets: append([]string{}, sel.Outlets...),
	}
	for _, d := range sel.Days {
		out.Days = append(out.Days, strings.ToLower(d.String()))
	}
	return out
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == s {
			return d, true
		}
	}
	return 0, false
}
