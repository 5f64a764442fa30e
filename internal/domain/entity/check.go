package entity

import "github.com/shopspring/decimal"

// Grados de calidad de un control de recepción.
const (
	GradeExcellent = "excellent"
	GradeGood      = "good"
	GradeAverage   = "average"
	GradePoor      = "poor"
)

// Resultados de un control.
const (
	CheckPending = "pending"
	CheckPass    = "pass"
	CheckFail    = "fail"
)

// CheckItem es una línea de control de calidad. ActualQuantity nil = aún no digitada.
type CheckItem struct {
	ID               string
	ItemName         string
	ExpectedQuantity decimal.Decimal
	ActualQuantity   *decimal.Decimal
	QualityGrade     string // vacío = sin calificar
	Outcome          string
}
