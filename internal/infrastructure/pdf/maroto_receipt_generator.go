// Package pdf implementa la representación gráfica del recibo de abono que la
// firma entrega al cliente tras un pago masivo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Firma contable  │  N° de transacción + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + RUC                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Periodo | Detalle | Monto                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ANTICIPO DE RENTA (si aplica)                               │
//	│  TOTAL ABONADO                                               │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/dvergara/Tributario-api/internal/application/cobranza"
	"github.com/dvergara/Tributario-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 72}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ cobranza.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa cobranza.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	firmName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre de la firma
// que encabeza el recibo.
func NewMarotoReceiptGenerator(firmName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{firmName: firmName}
}

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, receipt *dto.ReceiptResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de abono", true).
		WithAuthor(g.firmName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(receipt.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if receipt.AnnualTask != nil {
		m.AddRows(annualTaskRow(receipt.AnnualTask))
	}
	m.AddRows(totalRow(receipt))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo acredita el abono de honorarios por obligaciones tributarias gestionadas por la firma. "+
				"Conserve este documento como soporte de pago.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la firma (izq) y transacción + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.firmName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicios contables y tributarios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE ABONO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(receipt.TransactionID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+receipt.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente.
func clientRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(receipt.TaxpayerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("RUC/CI: "+receipt.TaxpayerRUC, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de periodos abonados.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Periodo", 4, align.Left),
		h("Detalle", 5, align.Left),
		h("Monto", 3, align.Right),
	)
}

// tableLineRows: una fila por periodo abonado.
func tableLineRows(lines []dto.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				l.Period,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				"Honorarios de declaración",
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// annualTaskRow: bloque del anticipo de renta sintetizado.
func annualTaskRow(task *dto.AnnualTaskView) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ANTICIPO DE RENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Vence: %s   |   Abonado: $%s de $%s",
				task.Concept, task.DueDate, task.Advance.StringFixed(2), task.Cost.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// totalRow: total abonado alineado a la derecha.
func totalRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL ABONADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+receipt.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
