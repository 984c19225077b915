// Package pdf genera el recibo PDF de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Orden + Fecha + Estado               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, email, dirección                           │
//	│  ENVÍO: transportadora, fecha requerida                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Envío / TOTAL                           │
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

	"github.com/tu-usuario/store-api/internal/application/usecase"
	"github.com/tu-usuario/store-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre de la tienda.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{storeName: storeName}
}

// OrderReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) OrderReceipt(
	order *entity.Order,
	user *entity.User,
	shipper *entity.Shipper,
	products map[int64]entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo orden #%d", order.ID), true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(user))
	m.AddRows(shippingRow(order, shipper))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	subtotal := decimal.Zero
	for _, d := range order.Details {
		m.AddRows(detailRow(d, products))
		subtotal = subtotal.Add(d.PriceEach.Mul(decimal.NewFromInt(int64(d.QuantityOrdered))))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(subtotal, order.ShippingPrice))

	if order.Comment != nil && *order.Comment != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Comentario: "+*order.Comment, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq), número de orden, fecha y estado (der).
func headerRow(storeName string, order *entity.Order) core.Row {
	fecha := order.OrderDate.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de compra", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("ORDEN #%d", order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
			text.New("Estado: "+order.Status, props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

// customerRow: datos del comprador.
func customerRow(user *entity.User) core.Row {
	address := "—"
	if user.Address != nil && *user.Address != "" {
		address = *user.Address
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(user.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Dirección: %s",
				user.Email, user.Phone, address,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// shippingRow: transportadora y fecha requerida de entrega.
func shippingRow(order *entity.Order, shipper *entity.Shipper) core.Row {
	shipperName := "—"
	if shipper != nil {
		shipperName = shipper.Name
	}
	shipped := "pendiente"
	if order.ShippedDate != nil {
		shipped = order.ShippedDate.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ENVÍO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Transportadora: %s   |   Requerida: %s   |   Despachada: %s",
				shipperName, order.RequiredDate.Format("02/01/2006"), shipped,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// detailRow: una fila por línea de la orden.
func detailRow(d entity.OrderDetail, products map[int64]entity.Product) core.Row {
	name := fmt.Sprintf("Producto #%d", d.ProductID)
	if p, ok := products[d.ProductID]; ok {
		name = p.Name
	}
	lineTotal := d.PriceEach.Mul(decimal.NewFromInt(int64(d.QuantityOrdered)))
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", d.QuantityOrdered),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(6).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(
			"$"+d.PriceEach.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"$"+lineTotal.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(subtotal, shipping decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	total := subtotal.Add(shipping)
	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Envío:"),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value("$"+subtotal.StringFixed(2)),
			value("$"+shipping.StringFixed(2)),
			text.New("$"+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}
