// Package pdf implementa la maquetación del informe de flota con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: contadores por estado de remolque                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Número | Modelo | TÜF | SP | Estado          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/portusapp/portus-console/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 183, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// FleetReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) FleetReport(_ context.Context, rows []report.Row, sum report.Summary, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Flottenbericht", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(sum))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d Einträge insgesamt", len(rows)), props.Text{
			Size: 7.5, Color: colorGray, Align: align.Right, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Flottenbericht", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Chassis & LKW — Inspektionsübersicht", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Stand: "+generatedAt.Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow pinta los contadores por estado de remolque.
func summaryRow(sum report.Summary) core.Row {
	cell := func(label string, n int, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: c, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		cell("OK", sum.OK, colorPrimary),
		cell("Bald fällig", sum.DueSoon, colorPrimary),
		cell("Überfällig", sum.Overdue, colorRed),
		cell("Ohne Datum", sum.NoDate, colorGray),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Typ", 1, align.Left),
		h("Nummer", 3, align.Left),
		h("Modell", 3, align.Left),
		h("TÜF", 1, align.Center),
		h("SP", 1, align.Center),
		h("Status", 3, align.Left),
	)
}

func tableRows(rows []report.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		statusColor := colorGray
		if r.Kind == "Chassi" {
			statusColor = colorPrimary
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(r.Kind, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(r.Nummer, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(r.Modell, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Tuf, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(r.Esp, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(r.Status, props.Text{Size: 8, Top: 1, Left: 1, Color: statusColor})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
