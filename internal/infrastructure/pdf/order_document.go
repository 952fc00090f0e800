// Package pdf genera la confirmación de orden en A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa              │  N° Orden + Fecha + Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + empresa + contacto + dirección de envío   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Pieza | P.Unit | Desc. | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / Envío / TOTAL    │
//	│           Pagado / Saldo                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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
	"golang.org/x/text/number"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// OrderRenderer implementa sales.OrderDocumentRenderer usando Maroto v2.
type OrderRenderer struct {
	companyName string
	printer     *message.Printer
}

// NewOrderRenderer construye el generador. companyName va en la cabecera del documento.
func NewOrderRenderer(companyName string) *OrderRenderer {
	return &OrderRenderer{
		companyName: companyName,
		printer:     message.NewPrinter(language.English),
	}
}

// RenderOrder genera el PDF de la orden (con cliente y líneas cargados) y devuelve sus bytes.
func (r *OrderRenderer) RenderOrder(o *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Order "+o.OrderNumber, true).
		WithAuthor(r.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(r.itemRows(o)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(r.totalsRow(o))

	if o.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Notes", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(o.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y número, fecha y estado de la orden (der).
func (r *OrderRenderer) headerRow(o *entity.Order) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.companyName, "Auto Parts"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Location: "+o.Location, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDER CONFIRMATION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Date: "+o.OrderDate.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Status: %s / %s", o.Status, o.PaymentStatus), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del comprador y dirección de envío.
func customerRow(o *entity.Order) core.Row {
	c := o.Customer
	if c == nil {
		c = &entity.Customer{}
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Company: %s   |   Email: %s   |   Phone: %s",
				nonEmpty(c.Company, "—"),
				nonEmpty(c.Email, "—"),
				nonEmpty(c.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Ship to: "+nonEmpty(o.ShippingAddress, nonEmpty(c.Address, "—")), props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Qty", 1, align.Center),
		h("Part", 5, align.Left),
		h("Unit price", 2, align.Right),
		h("Discount", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// itemRows: una fila por línea de la orden.
func (r *OrderRenderer) itemRows(o *entity.Order) []core.Row {
	rows := make([]core.Row, 0, len(o.Items))
	for _, it := range o.Items {
		name := it.InventoryID
		if it.Inventory != nil {
			name = it.Inventory.SKU + "  " + it.Inventory.PartName
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.amount(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.amount(it.Discount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.amount(it.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// totalsRow: bloque de totales alineado a la derecha, montos con el código ISO de la moneda.
func (r *OrderRenderer) totalsRow(o *entity.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(d decimal.Decimal, top float64) core.Component {
		return text.New(r.money(d, o.Currency), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top})
	}

	return row.New(40).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("Discount:", 6),
			label("Tax:", 11),
			label("Shipping:", 16),
			grand("TOTAL:", 22),
			label("Paid:", 29),
			label("Balance:", 34),
		),
		col.New(4).Add(
			value(o.Subtotal, 1),
			value(o.Discount.Neg(), 6),
			value(o.Tax, 11),
			value(o.ShippingCost, 16),
			grand(r.money(o.TotalAmount, o.Currency), 22),
			value(o.PaidAmount, 29),
			value(o.Balance(), 34),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// amount formatea con separador de miles y 2 decimales: 1234.5 → "1,234.50".
func (r *OrderRenderer) amount(d decimal.Decimal) string {
	return r.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// money amount precedido del código ISO: "AED 1,234.50".
func (r *OrderRenderer) money(d decimal.Decimal, currency string) string {
	if currency == "" {
		return r.amount(d)
	}
	return currency + " " + r.amount(d)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
