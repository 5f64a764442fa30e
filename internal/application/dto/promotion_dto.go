package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectionDTO listas multi-selección del constructor de promociones.
// Days usa nombres en inglés en minúscula ("monday", ...).
type SelectionDTO struct {
	Days    []string `json:"days"`
	Items   []string `json:"items"`
	Outlets []string `json:"outlets"`
}

// ToggleRequest body de POST /api/mis/promotions/toggle.
type ToggleRequest struct {
	Selection SelectionDTO `json:"selection"`
	Field     string       `json:"field" validate:"required,oneof=days items outlets"`
	Value     string       `json:"value" validate:"required"`
}

// PromotionRequest body de POST /api/mis/promotions/validate.
type PromotionRequest struct {
	Name          string       `json:"name" validate:"required"`
	DiscountType  string       `json:"discount_type" validate:"required,oneof=percentage flat"`
	DiscountValue Amount       `json:"discount_value"`
	StartDate     time.Time    `json:"start_date" validate:"required"`
	EndDate       time.Time    `json:"end_date" validate:"required"`
	Selection     SelectionDTO `json:"selection"`
}

// PromotionResponse promoción validada.
type PromotionResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Selection     SelectionDTO    `json:"selection"`
}

// LoyaltyResponse puntos de lealtad de una compra.
type LoyaltyResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	Tier       string          `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Points     int64           `json:"points"`
}
