package rules

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// IsValidGrade indica si grade es uno de los cuatro grados conocidos.
func IsValidGrade(grade string) bool {
	switch grade {
	case entity.GradeExcellent, entity.GradeGood, entity.GradeAverage, entity.GradePoor:
		return true
	}
	return false
}

// EvaluateCheck decide el resultado de un control de calidad.
// Sin cantidad real o sin grado → pending. La cantidad nunca compensa la calidad:
// pass solo si actual ≥ expected y el grado es good o excellent.
func EvaluateCheck(actual *decimal.Decimal, expected decimal.Decimal, grade string) string {
	if actual == nil || !IsValidGrade(grade) {
		return entity.CheckPending
	}
	enough := Sanitize(*actual).GreaterThanOrEqual(Sanitize(expected))
	if enough && (grade == entity.GradeGood || grade == entity.GradeExcellent) {
		return entity.CheckPass
	}
	return entity.CheckFail
}
