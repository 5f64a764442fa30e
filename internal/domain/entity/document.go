package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento con líneas de cantidad × precio.
const (
	DocumentPurchase = "purchase" // orden de compra
	DocumentWastage  = "wastage"  // registro de merma
	DocumentDispatch = "dispatch" // despacho central → outlet
	DocumentOrder    = "order"    // pedido de cliente desde el menú
)

// LineItem es una fila de un documento. Total se deriva: round2(Quantity × UnitPrice).
type LineItem struct {
	ID        string
	ItemName  string
	Unit      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Reason    string // solo mermas
}

// Document agrupa líneas bajo una cabecera (compra, merma, despacho o pedido).
type Document struct {
	ID           string
	Kind         string
	OutletID     string
	FromOutletID string // solo despachos
	Supplier     string // solo compras
	Reference    string
	Note         string
	Date         time.Time
	Lines        []LineItem
	GrandTotal   decimal.Decimal
}

// IsValidDocumentKind indica si kind es uno de los tipos soportados.
func IsValidDocumentKind(kind string) bool {
	switch kind {
	case DocumentPurchase, DocumentWastage, DocumentDispatch, DocumentOrder:
		return true
	}
	return false
}
