package rules

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// LineTotal = round2(qty × price).
func LineTotal(qty, price decimal.Decimal) decimal.Decimal {
	return Sanitize(qty).Mul(Sanitize(price)).Round(2)
}

// GrandTotal = round2(Σ LineTotal). Recalcula cada línea; ignora el Total guardado.
func GrandTotal(lines []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(LineTotal(l.Quantity, l.UnitPrice))
	}
	return sum.Round(2)
}

// ApplyTotals devuelve una copia de las líneas con Total calculado y el gran total.
// Acepta filas a medio llenar.
func ApplyTotals(lines []entity.LineItem) ([]entity.LineItem, decimal.Decimal) {
	out := make([]entity.LineItem, len(lines))
	for i, l := range lines {
		l.Quantity = Sanitize(l.Quantity)
		l.UnitPrice = Sanitize(l.UnitPrice)
		l.Total = LineTotal(l.Quantity, l.UnitPrice)
		out[i] = l
	}
	return out, GrandTotal(out)
}
