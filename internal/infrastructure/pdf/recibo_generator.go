// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Recibo N° + Fecha       │
//	│  ───────────────────────────────────────────────────── │
//	│  CLIENTE: nombre (o "Cliente Eliminado")                │
//	│  ───────────────────────────────────────────────────── │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal             │
//	│  ───────────────────────────────────────────────────── │
//	│  TOTALES: Subtotal / Envío / TOTAL                      │
//	│  FOOTER: estado + leyenda                               │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ sales.ReciboGenerator = (*MarotoReciboGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReciboGenerator implementa sales.ReciboGenerator usando Maroto v2.
type MarotoReciboGenerator struct {
	negocio string
}

// NewMarotoReciboGenerator construye el generador. negocio es el nombre que
// encabeza el recibo.
func NewMarotoReciboGenerator(negocio string) *MarotoReciboGenerator {
	return &MarotoReciboGenerator{negocio: negocio}
}

// GenerarRecibo genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarRecibo(
	_ context.Context,
	venta *entity.Venta,
	cliente string,
	detalles []repository.DetalleConProducto,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo de Venta #%d", venta.ID), true).
		WithAuthor(g.negocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.negocio, venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(venta, detalles))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(venta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y número + fecha (der).
func headerRow(negocio string, venta *entity.Venta) core.Row {
	fecha := venta.Fecha.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(negocio, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", venta.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// clienteRow: nombre del comprador.
func clienteRow(cliente string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
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
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de venta.
func tableDetailRows(detalles []repository.DetalleConProducto) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(d.Cantidad))
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				d.ProductoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(venta *entity.Venta, detalles []repository.DetalleConProducto) core.Row {
	subtotal := decimal.Zero
	for _, d := range detalles {
		subtotal = subtotal.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(d.Cantidad)))
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Envío:"),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value("$"+subtotal.StringFixed(2)),
			value("$"+venta.CostoEnvio.StringFixed(2)),
			text.New("$"+venta.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// footerRow: estado de la venta y leyenda de agradecimiento.
func footerRow(venta *entity.Venta) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Estado: "+venta.Estado, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorGray,
			}),
			text.New("Gracias por su compra.", props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}
