package dto

import "github.com/shopspring/decimal"

// CheckItemRequest línea del formulario de control de calidad.
// ActualQuantity ausente, null o "" significa aún no digitada.
type CheckItemRequest struct {
	ItemName         string  `json:"item_name"`
	ExpectedQuantity Amount  `json:"expected_quantity"`
	ActualQuantity   *Amount `json:"actual_quantity"`
	QualityGrade     string  `json:"quality_grade"`
}

// CheckRequest body de evaluate/submit.
type CheckRequest struct {
	Reference string             `json:"reference,omitempty"`
	Items     []CheckItemRequest `json:"items"`
}

// CheckItemResponse línea con resultado.
type CheckItemResponse struct {
	ItemName         string           `json:"item_name"`
	ExpectedQuantity decimal.Decimal  `json:"expected_quantity"`
	ActualQuantity   *decimal.Decimal `json:"actual_quantity"`
	QualityGrade     string           `json:"quality_grade,omitempty"`
	Outcome          string           `json:"outcome"`
}

// CheckResponse resultados y conteos.
type CheckResponse struct {
	Reference string              `json:"reference,omitempty"`
	Items     []CheckItemResponse `json:"items"`
	Passed    int                 `json:"passed"`
	Failed    int                 `json:"failed"`
	Pending   int                 `json:"pending"`
}
