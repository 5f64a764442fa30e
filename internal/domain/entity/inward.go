package entity

import "github.com/shopspring/decimal"

// Estados de recepción (inward) de una línea de orden de compra.
const (
	InwardPending  = "pending"
	InwardPartial  = "partial"
	InwardComplete = "complete"
)

// InwardItem reconcilia lo pedido contra lo recibido.
type InwardItem struct {
	ID               string
	StockRecordID    string
	ItemName         string
	OrderedQuantity  decimal.Decimal
	ReceivedQuantity decimal.Decimal
	UnitCost         decimal.Decimal
	Status           string
}
