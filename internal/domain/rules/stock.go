package rules

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// InwardStatus mapea recibido vs pedido al estado de recepción.
//
//	received = 0           → pending
//	received ≥ ordered     → complete
//	0 < received < ordered → partial
func InwardStatus(received, ordered decimal.Decimal) string {
	received = Sanitize(received)
	ordered = Sanitize(ordered)
	switch {
	case received.IsZero():
		return entity.InwardPending
	case received.GreaterThanOrEqual(ordered):
		return entity.InwardComplete
	default:
		return entity.InwardPartial
	}
}

// StockLevelPercent calcula el ancho de la barra de nivel: (current-min)/(max-min)*100,
// acotado a [0,100] y redondeado a 2 decimales. Si max = min la barra está llena
// cuando current ≥ max y vacía en otro caso.
//
// Solo es presentación: no define el badge de estado del registro.
func StockLevelPercent(current, min, max decimal.Decimal) decimal.Decimal {
	current, min, max = Sanitize(current), Sanitize(min), Sanitize(max)
	span := max.Sub(min)
	if !span.IsPositive() {
		if current.GreaterThanOrEqual(max) {
			return hundred
		}
		return decimal.Zero
	}
	pct := current.Sub(min).Div(span).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct.Round(2)
}

// Classify aplica el contrato de tres estados: critical bajo la mitad del mínimo,
// low bajo el mínimo, good en otro caso. max no interviene (sobre-stock sigue siendo good).
func Classify(current, min, max decimal.Decimal) string {
	current, min = Sanitize(current), Sanitize(min)
	switch {
	case current.LessThan(min.Div(decimal.NewFromInt(2))):
		return entity.StockStatusCritical
	case current.LessThan(min):
		return entity.StockStatusLow
	default:
		return entity.StockStatusGood
	}
}

// WeightedAverageCost implementa el costo promedio ponderado al recibir mercadería:
// ((stock × costo) + (entrada × costoEntrada)) / (stock + entrada).
func WeightedAverageCost(stockQty, stockCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	stockQty, inQty = Sanitize(stockQty), Sanitize(inQty)
	sum := stockQty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockQty.Mul(Sanitize(stockCost)).Add(inQty.Mul(Sanitize(inCost)))
	return num.Div(sum).Round(4)
}
