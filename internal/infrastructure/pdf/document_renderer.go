// Package pdf genera la versión imprimible de los documentos del MIS
// (órdenes de compra, mermas, despachos y pedidos).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Outlet + dirección  │  Tipo de documento + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA: Proveedor / Origen / Referencia / Nota            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Ítem | Unidad | P.Unit | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	│  FOOTER: QR con el ID del documento                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/restaurante-mis/internal/application/ports"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.DocumentRenderer = (*MarotoRenderer)(nil)

var titles = map[string]string{
	entity.DocumentPurchase: "ORDEN DE COMPRA",
	entity.DocumentWastage:  "REGISTRO DE MERMA",
	entity.DocumentDispatch: "DESPACHO A OUTLET",
	entity.DocumentOrder:    "PEDIDO",
}

// MarotoRenderer implementa ports.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct {
	printer *message.Printer
}

// NewMarotoRenderer construye el generador. Los montos se formatean en español latinoamericano.
func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{printer: message.NewPrinter(language.LatinAmericanSpanish)}
}

// RenderDocument genera el PDF y devuelve sus bytes.
func (g *MarotoRenderer) RenderDocument(_ context.Context, doc *entity.Document, outlet *entity.Outlet) ([]byte, error) {
	if doc == nil || outlet == nil {
		return nil, fmt.Errorf("pdf: documento u outlet nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titleFor(doc.Kind), true).
		WithAuthor(outlet.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, outlet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(doc.Kind))
	m.AddRows(g.tableRows(doc)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(doc.GrandTotal))

	if doc.ID != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(footerRow(doc.ID))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func headerRow(doc *entity.Document, outlet *entity.Outlet) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(outlet.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(outlet.Address, "-"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(titleFor(doc.Kind), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+doc.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func detailsRow(doc *entity.Document) core.Row {
	var info string
	switch doc.Kind {
	case entity.DocumentPurchase:
		info = "Proveedor: " + nonEmpty(doc.Supplier, "-")
	case entity.DocumentDispatch:
		info = "Origen: " + nonEmpty(doc.FromOutletID, "-") + "   |   Destino: " + doc.OutletID
	default:
		info = "Outlet: " + doc.OutletID
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(info, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(fmt.Sprintf("Referencia: %s   |   Nota: %s",
				nonEmpty(doc.Reference, "-"),
				nonEmpty(doc.Note, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow(kind string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	item := "Ítem"
	if kind == entity.DocumentWastage {
		item = "Ítem / Motivo"
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h(item, 5, align.Left),
		h("Unidad", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func (g *MarotoRenderer) tableRows(doc *entity.Document) []core.Row {
	rows := make([]core.Row, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		name := l.ItemName
		if doc.Kind == entity.DocumentWastage && l.Reason != "" {
			name += " / " + l.Reason
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(l.Unit, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.money(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.money(l.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *MarotoRenderer) totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL GENERAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(g.money(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func footerRow(id string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(id, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(text.New("Documento "+id, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray})),
	)
}

// money formatea con separador de miles y dos decimales, ej: 1234.5 → "$1.234,50".
func (g *MarotoRenderer) money(d decimal.Decimal) string {
	return g.printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

func titleFor(kind string) string {
	if t, ok := titles[kind]; ok {
		return t
	}
	return "DOCUMENTO"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
