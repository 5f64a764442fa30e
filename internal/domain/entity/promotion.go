package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles del programa de lealtad.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Tipos de descuento de una promoción.
const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// PromotionSelection agrupa las listas multi-selección del constructor de promociones.
type PromotionSelection struct {
	Days    []time.Weekday
	Items   []string
	Outlets []string
}

// Promotion es la definición de una promoción armada desde el formulario.
type Promotion struct {
	ID            string
	Name          string
	DiscountType  string
	DiscountValue decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	Selection     PromotionSelection
}
