// Package pdf genera la versión imprimible del cierre de caja diario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: KOAJ Puerto Carreño │ CIERRE DE CAJA + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MONEDAS: Denominación | Cantidad | Subtotal           │
//	│  TABLA BILLETES: Denominación | Cantidad | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BASE: desglose + total + ¿exacta?                           │
//	│  CONSIGNACIÓN: desglose + ajustes + total final              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: venta esperada en efectivo + sello de generación    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

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

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/domain/cash"
	"github.com/koajpc/backoffice-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoClosingGenerator genera el PDF del cierre de caja usando Maroto v2.
type MarotoClosingGenerator struct {
	storeName string
}

// NewMarotoClosingGenerator construye el generador.
func NewMarotoClosingGenerator(storeName string) *MarotoClosingGenerator {
	return &MarotoClosingGenerator{storeName: storeName}
}

// GenerateClosingPDF genera el PDF del cierre y devuelve sus bytes.
func (g *MarotoClosingGenerator) GenerateClosingPDF(_ context.Context, closing *dto.CashClosingResponse) ([]byte, error) {
	report := closing.CashCount

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de Caja "+closing.DateRequested, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, closing))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("MONEDAS"))
	m.AddRows(denominationTableRows(report.InputCoins)...)
	m.AddRows(subtotalRow("Total monedas", report.Totals.TotalCoins))

	m.AddRows(sectionTitleRow("BILLETES"))
	m.AddRows(denominationTableRows(report.InputBills)...)
	m.AddRows(subtotalRow("Total billetes", report.Totals.TotalBills))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(subtotalRow("TOTAL EFECTIVO CONTADO", report.Totals.TotalGeneral))

	m.AddRows(line.NewRow(2))
	m.AddRows(baseRows(report)...)

	m.AddRows(line.NewRow(2))
	m.AddRows(depositRows(report)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(closing)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y título + fecha del cierre (der).
func headerRow(storeName string, closing *dto.CashClosingResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Usuario: "+closing.UsernameUsed, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+closing.DateRequested, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Generado: "+closing.RequestDatetime, props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// denominationTableRows: una fila por denominación, de menor a mayor.
func denominationTableRows(counts cash.DenominationCount) []core.Row {
	denoms := make([]int64, 0, len(counts))
	for d := range counts {
		denoms = append(denoms, d)
	}
	sort.Slice(denoms, func(i, j int) bool { return denoms[i] < denoms[j] })

	rows := []core.Row{row.New(6).Add(
		tableHeaderCol("Denominación", 4, align.Left),
		tableHeaderCol("Cantidad", 4, align.Center),
		tableHeaderCol("Subtotal", 4, align.Right),
	)}
	for _, d := range denoms {
		qty := counts[d]
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(money.FormatCOP(d), props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", qty), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(money.FormatCOP(d*qty), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 2})),
		))
	}
	return rows
}

func tableHeaderCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 2, Right: 2,
	}))
}

func subtotalRow(label string, amount int64) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(4).Add(text.New(money.FormatCOP(amount), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 2,
		})),
	)
}

// baseRows: base que queda en caja y si se alcanzó exacta.
func baseRows(report *cash.ClosingReport) []core.Row {
	estado := "BASE EXACTA"
	if !report.Base.ExactBaseObtained {
		estado = fmt.Sprintf("BASE INCOMPLETA (faltan %s)", money.FormatCOP(report.Base.RemainingForBase))
	}
	return []core.Row{
		sectionTitleRow("BASE EN CAJA"),
		detailRow("Base en monedas", report.Base.TotalBaseCoins),
		detailRow("Base en billetes", report.Base.TotalBaseBills),
		subtotalRow("TOTAL BASE", report.Base.TotalBase),
		row.New(6).Add(col.New(12).Add(
			text.New(estado, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorGray, Top: 1, Right: 2,
			}),
		)),
	}
}

// depositRows: efectivo a consignar con los ajustes del día.
func depositRows(report *cash.ClosingReport) []core.Row {
	adj := report.Adjustments
	return []core.Row{
		sectionTitleRow("CONSIGNACIÓN"),
		detailRow("Efectivo a consignar (sin ajustes)", report.Deposit.TotalBeforeAdjustments),
		detailRow("(−) Gastos operativos", adj.OperatingExpenses),
		detailRow("(−) Préstamos", adj.Loans),
		detailRow("Excedente del día", adj.Surplus),
		subtotalRow("EFECTIVO PARA CONSIGNAR", report.Deposit.FinalDeposit),
	}
}

func detailRow(label string, amount int64) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(label, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 2, Color: colorGray,
		})),
		col.New(4).Add(text.New(money.FormatCOP(amount), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 2,
		})),
	)
}

// footerRows: venta esperada en efectivo y sello de generación.
func footerRows(closing *dto.CashClosingResponse) []core.Row {
	adj := closing.CashCount.Adjustments
	return []core.Row{
		row.New(7).Add(
			col.New(8).Add(text.New("Venta en efectivo esperada (Alegra):", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 2,
			})),
			col.New(4).Add(text.New(adj.ExpectedCashSalesFormatted, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 2,
			})),
		),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Documento generado el %s (%s). Conserve este soporte junto con la consignación bancaria.",
				closing.RequestDatetime, closing.RequestTZ),
				props.Text{Size: 6.5, Color: colorGray, Top: 2}),
		)),
	}
}
