package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del badge de stock que muestran los tableros de inventario.
const (
	StockStatusGood     = "good"
	StockStatusLow      = "low"
	StockStatusCritical = "critical"
)

// Categorías de ítems de inventario.
const (
	CategoryRawMaterial = "raw_material"
	CategoryReadyToSale = "ready_to_sale" // producto comprado, empacado para venta directa
	CategoryItemMix     = "item_mix"      // intermedio derivado de insumos (salsa, masa)
)

// StockRecord representa un ítem inventariable en un outlet.
// Status es el badge almacenado con el registro; no se recalcula a partir de
// Current/Min/Max (los tableros muestran ambos por separado).
type StockRecord struct {
	ID        string
	OutletID  string
	ItemName  string
	Category  string
	Current   decimal.Decimal
	Min       decimal.Decimal
	Max       decimal.Decimal
	Unit      string // solo presentación
	UnitCost  decimal.Decimal
	Status    string // good, low, critical
	UpdatedAt time.Time
}
