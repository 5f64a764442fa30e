package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemResponse fila del tablero de inventario.
// Status es el badge guardado; LevelPct es el ancho de la barra. Son independientes.
type StockItemResponse struct {
	ID       string          `json:"id"`
	OutletID string          `json:"outlet_id"`
	ItemName string          `json:"item_name"`
	Category string          `json:"category"`
	Current  decimal.Decimal `json:"current"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Unit     string          `json:"unit"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Status   string          `json:"status"`
	LevelPct decimal.Decimal `json:"level_pct"`
}

// StockDashboardResponse respuesta de GET /api/mis/inventory.
type StockDashboardResponse struct {
	OutletID      string              `json:"outlet_id,omitempty"`
	Items         []StockItemResponse `json:"items"`
	Total         int                 `json:"total"`
	CountByStatus map[string]int      `json:"count_by_status"`
	StockValue    decimal.Decimal     `json:"stock_value"`
}

// ClassifyRequest body para POST /api/mis/inventory/classify.
type ClassifyRequest struct {
	Current Amount `json:"current"`
	Min     Amount `json:"min"`
	Max     Amount `json:"max"`
}

// ClassifyResponse clasificación de tres estados más nivel de barra.
type ClassifyResponse struct {
	Status   string          `json:"status"`
	LevelPct decimal.Decimal `json:"level_pct"`
}

// InwardLineRequest línea de recepción.
type InwardLineRequest struct {
	StockRecordID    string `json:"stock_record_id,omitempty"`
	ItemName         string `json:"item_name"`
	OrderedQuantity  Amount `json:"ordered_quantity"`
	ReceivedQuantity Amount `json:"received_quantity"`
	UnitCost         Amount `json:"unit_cost"`
}

// InwardRequest body de reconcile/receive.
type InwardRequest struct {
	PurchaseRef string              `json:"purchase_ref,omitempty"`
	Lines       []InwardLineRequest `json:"lines"`
}

// InwardLineResponse línea con estado derivado.
type InwardLineResponse struct {
	StockRecordID    string          `json:"stock_record_id,omitempty"`
	ItemName         string          `json:"item_name"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	Status           string          `json:"status"`
}

// InwardResponse estado por línea y global.
type InwardResponse struct {
	PurchaseRef string               `json:"purchase_ref,omitempty"`
	Lines       []InwardLineResponse `json:"lines"`
	Status      string               `json:"status"`
}

// ReceiveResponse resultado de aplicar una recepción al stock.
type ReceiveResponse struct {
	InwardResponse
	Updated []StockItemResponse `json:"updated"`
}

// OutletDigest resumen de stock de un outlet.
type OutletDigest struct {
	OutletID      string          `json:"outlet_id"`
	OutletName    string          `json:"outlet_name"`
	Items         int             `json:"items"`
	CountByStatus map[string]int  `json:"count_by_status"`
	BelowMin      []string        `json:"below_min"`
	BadgeMismatch []string        `json:"badge_mismatch"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// StockDigestResponse respuesta de GET /api/mis/reports/stock-digest.
type StockDigestResponse struct {
	GeneratedAt time.Time       `json:"generated_at"`
	DateLabel   string          `json:"date_label"`
	Outlets     []OutletDigest  `json:"outlets"`
	TotalValue  decimal.Decimal `json:"total_value"`
}
