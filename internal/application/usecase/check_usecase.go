package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
)

// CheckUseCase evalúa los controles de calidad en recepción.
type CheckUseCase struct{}

// NewCheckUseCase construye el caso de uso.
func NewCheckUseCase() *CheckUseCase { return &CheckUseCase{} }

// Evaluate calcula el resultado de cada línea; nunca falla.
func (uc *CheckUseCase) Evaluate(in dto.CheckRequest) *dto.CheckResponse {
	out := &dto.CheckResponse{Reference: in.Reference, Items: make([]dto.CheckItemResponse, 0, len(in.Items))}
	for _, it := range in.Items {
		var actual *decimal.Decimal
		if it.ActualQuantity != nil && !it.ActualQuantity.IsBlank() {
			a := it.ActualQuantity.Decimal
			actual = &a
		}
		outcome := rules.EvaluateCheck(actual, it.ExpectedQuantity.Decimal, it.QualityGrade)
		switch outcome {
		case entity.CheckPass:
			out.Passed++
		case entity.CheckFail:
			out.Failed++
		default:
			out.Pending++
		}
		out.Items = append(out.Items, dto.CheckItemResponse{
			ItemName:         it.ItemName,
			ExpectedQuantity: rules.Sanitize(it.ExpectedQuantity.Decimal),
			ActualQuantity:   actual,
			QualityGrade:     it.QualityGrade,
			Outcome:          outcome,
		})
	}
	return out
}

// Submit exige que ninguna línea quede pendiente.
func (uc *CheckUseCase) Submit(in dto.CheckRequest) (*dto.CheckResponse, error) {
	out := uc.Evaluate(in)
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("%w: sin líneas", domain.ErrIncompleteRows)
	}
	if out.Pending > 0 {
		var rows []int
		for i, it := range out.Items {
			if it.Outcome == entity.CheckPending {
				rows = append(rows, i)
			}
		}
		return nil, fmt.Errorf("%w: filas %v", domain.ErrIncompleteRows, rows)
	}
	return out, nil
}
