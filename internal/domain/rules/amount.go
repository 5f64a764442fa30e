package rules

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount convierte lo digitado en un campo numérico a decimal.
// Vacío, texto no numérico y negativos devuelven cero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return Sanitize(d)
}

// FromFloat convierte un float a decimal; NaN e infinitos devuelven cero.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return Sanitize(decimal.NewFromFloat(f))
}

// Sanitize lleva a cero las cantidades negativas.
func Sanitize(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
