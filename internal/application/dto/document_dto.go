package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest fila de un documento tal como llega del formulario.
type LineItemRequest struct {
	ItemName  string `json:"item_name"`
	Unit      string `json:"unit,omitempty"`
	Quantity  Amount `json:"quantity"`
	UnitPrice Amount `json:"unit_price"`
	Reason    string `json:"reason,omitempty"`
}

// DocumentRequest body para quote/submit/pdf de compras, mermas, despachos y pedidos.
type DocumentRequest struct {
	OutletID     string            `json:"outlet_id"`
	FromOutletID string            `json:"from_outlet_id,omitempty"`
	Supplier     string            `json:"supplier,omitempty"`
	Reference    string            `json:"reference,omitempty"`
	Note         string            `json:"note,omitempty"`
	Lines        []LineItemRequest `json:"lines"`
}

// LineItemResponse fila con total calculado.
type LineItemResponse struct {
	ID        string          `json:"id,omitempty"`
	ItemName  string          `json:"item_name"`
	Unit      string          `json:"unit,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Reason    string          `json:"reason,omitempty"`
}

// DocumentResponse documento con totales.
type DocumentResponse struct {
	ID           string             `json:"id,omitempty"`
	Kind         string             `json:"kind"`
	OutletID     string             `json:"outlet_id,omitempty"`
	FromOutletID string             `json:"from_outlet_id,omitempty"`
	Supplier     string             `json:"supplier,omitempty"`
	Reference    string             `json:"reference,omitempty"`
	Note         string             `json:"note,omitempty"`
	Date         *time.Time         `json:"date,omitempty"`
	Lines        []LineItemResponse `json:"lines"`
	GrandTotal   decimal.Decimal    `json:"grand_total"`
}
