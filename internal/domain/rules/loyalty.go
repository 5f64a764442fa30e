package rules

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// TierMultiplier devuelve el multiplicador de puntos del nivel; desconocido = 1.
func TierMultiplier(tier string) decimal.Decimal {
	switch tier {
	case entity.TierSilver:
		return decimal.NewFromFloat(1.5)
	case entity.TierGold:
		return decimal.NewFromInt(2)
	case entity.TierPlatinum:
		return decimal.NewFromInt(3)
	default:
		return decimal.NewFromInt(1)
	}
}

// LoyaltyPoints = floor(amount × multiplicador del nivel).
func LoyaltyPoints(amount decimal.Decimal, tier string) int64 {
	return Sanitize(amount).Mul(TierMultiplier(tier)).Floor().IntPart()
}
