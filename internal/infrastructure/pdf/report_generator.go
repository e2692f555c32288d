// Package pdf implementa el reporte de cierre de un evento de decoración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Plantilla + Año  │  Fecha + Lugar                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: materiales emitidos (cant | material | fecha)       │
//	│  TABLA: herramientas emitidas (cant | herramienta | fecha)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: rubros de costo + TOTAL                             │
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

	"github.com/jhoicas/Eventos-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 128, Green: 0, Blue: 64}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.EventReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.EventReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(report *usecase.EventReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de evento", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("MATERIALES EMITIDOS"))
	m.AddRows(issuanceHeaderRow("Material"))
	for _, r := range issuanceRows(report.Materials) {
		m.AddRows(r)
	}
	if len(report.Materials) == 0 {
		m.AddRows(emptyRow("Sin emisiones de material"))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("HERRAMIENTAS EMITIDAS"))
	m.AddRows(issuanceHeaderRow("Herramienta"))
	for _, r := range issuanceRows(report.Tools) {
		m.AddRows(r)
	}
	if len(report.Tools) == 0 {
		m.AddRows(emptyRow("Sin emisiones de herramientas"))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("COSTOS"))
	for _, r := range costRows(report) {
		m.AddRows(r)
	}
	m.AddRows(totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del evento (izq) y fecha + lugar (der).
func headerRow(report *usecase.EventReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de cierre", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+report.Date.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(report.Location, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

// issuanceHeaderRow: cabecera de la tabla de emisiones.
func issuanceHeaderRow(itemLabel string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 2, align.Center),
		h(itemLabel, 5, align.Left),
		h("Tipo", 2, align.Center),
		h("Fecha", 3, align.Right),
	)
}

// issuanceRows: una fila por emisión.
func issuanceRows(lines []usecase.ReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(l.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(l.Type, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(l.Date.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func emptyRow(message string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(message, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}

// costRows: una fila por rubro de costo.
func costRows(report *usecase.EventReport) []core.Row {
	result := make([]core.Row, 0, len(report.Costs))
	for _, c := range report.Costs {
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(c.Description, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(4).Add(text.New("$"+c.Amount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// totalRow: total de costos del evento.
func totalRow(report *usecase.EventReport) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New("$"+report.TotalCost.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}
