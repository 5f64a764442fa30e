package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// Outlets de muestra.
const (
	OutletCentral = "out-central"
	OutletCentro  = "out-centro"
	OutletNorte   = "out-norte"
)

// SampleOutlets devuelve los outlets de muestra: cocina central y dos sucursales.
func SampleOutlets() []entity.Outlet {
	return []entity.Outlet{
		{ID: OutletCentral, Name: "Cocina Central", Address: "Zona Industrial, Bodega 4", IsCentral: true},
		{ID: OutletCentro, Name: "Sucursal Centro", Address: "Calle 10 # 5-32"},
		{ID: OutletNorte, Name: "Sucursal Norte", Address: "Av. 68 # 120-15"},
	}
}

// SampleStock devuelve los registros de stock con los que arrancan los tableros.
// El Status de cada registro es un dato fijo y puede no coincidir con su nivel.
func SampleStock() []entity.StockRecord {
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	rec := func(id, outlet, name, category, unit, status string, cur, min, max, cost float64) entity.StockRecord {
		return entity.StockRecord{
			ID:        id,
			OutletID:  outlet,
			ItemName:  name,
			Category:  category,
			Current:   decimal.NewFromFloat(cur),
			Min:       decimal.NewFromFloat(min),
			Max:       decimal.NewFromFloat(max),
			Unit:      unit,
			UnitCost:  decimal.NewFromFloat(cost),
			Status:    status,
			UpdatedAt: now,
		}
	}
	return []entity.StockRecord{
		rec("stk-001", OutletCentral, "Tomate chonto", entity.CategoryRawMaterial, "kg", entity.StockStatusGood, 45, 20, 100, 1.2),
		rec("stk-002", OutletCentral, "Queso mozzarella", entity.CategoryRawMaterial, "kg", entity.StockStatusLow, 8, 10, 40, 7.5),
		rec("stk-003", OutletCentral, "Harina de trigo", entity.CategoryRawMaterial, "kg", entity.StockStatusGood, 18, 25, 100, 0.9),
		rec("stk-004", OutletCentral, "Aceite de oliva", entity.CategoryRawMaterial, "l", entity.StockStatusLow, 12, 5, 20, 9.8),
		rec("stk-005", OutletCentral, "Masa de pizza", entity.CategoryItemMix, "und", entity.StockStatusCritical, 3, 15, 60, 0.65),
		rec("stk-006", OutletCentral, "Salsa napolitana", entity.CategoryItemMix, "l", entity.StockStatusGood, 22, 10, 30, 2.4),
		rec("stk-007", OutletCentro, "Gaseosa lata 330ml", entity.CategoryReadyToSale, "und", entity.StockStatusGood, 120, 48, 240, 0.55),
		rec("stk-008", OutletCentro, "Agua 600ml", entity.CategoryReadyToSale, "und", entity.StockStatusCritical, 30, 24, 144, 0.3),
		rec("stk-009", OutletCentro, "Queso mozzarella", entity.CategoryRawMaterial, "kg", entity.StockStatusGood, 6, 4, 12, 7.5),
		rec("stk-010", OutletNorte, "Gaseosa lata 330ml", entity.CategoryReadyToSale, "und", entity.StockStatusLow, 20, 48, 240, 0.55),
		rec("stk-011", OutletNorte, "Masa de pizza", entity.CategoryItemMix, "und", entity.StockStatusGood, 40, 15, 60, 0.65),
	}
}
